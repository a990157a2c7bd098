// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for path resolution.
var (
	ErrNameEmpty    = errors.New("name cannot be empty")
	ErrNameNotLocal = errors.New("name is not a local path")
	ErrEscapesBase  = errors.New("path escapes base directory")
)

// ResolveBase makes dir absolute and resolves symlinks so later containment
// checks compare real paths. The directory must exist.
func ResolveBase(dir string) (string, error) {
	if dir == "" {
		return "", ErrNameEmpty
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", absPath)
	}

	return absPath, nil
}

// ResolveWithin joins name onto base and verifies the result stays inside base.
// base must already be absolute and symlink-free (see ResolveBase).
//
// Rejected names:
//   - "" (ErrNameEmpty)
//   - "/etc/passwd", "../x", "a/../../x", "C:\x" (ErrNameNotLocal)
//   - names whose symlink target leaves base (ErrEscapesBase)
func ResolveWithin(base, name string) (string, error) {
	if name == "" {
		return "", ErrNameEmpty
	}
	if strings.ContainsRune(name, 0) || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrNameNotLocal, name)
	}

	joined := filepath.Join(base, name)

	// A missing file fails later on read; only the lexical check applies then.
	resolved := joined
	if realPath, err := filepath.EvalSymlinks(joined); err == nil {
		resolved = realPath
	}

	if !IsUnderDir(resolved, base) {
		return "", fmt.Errorf("%w: %q", ErrEscapesBase, name)
	}

	return joined, nil
}

// IsUnderDir reports whether path is dir itself or lies below it.
// The trailing separator guards against /base/path vs /base/pathevil.
func IsUnderDir(path, dir string) bool {
	cleanPath := filepath.Clean(path)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/mdcontent/site.yaml" -> true (absolute)
//   - "C:\config\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
