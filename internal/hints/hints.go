// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// RootEnvVar names the environment variable that overrides the content root.
const RootEnvVar = "MDCONTENT_ROOT"

// ForContentNotFound returns hints when a content file is missing.
// Mentions the resolved root so a wrong working directory is obvious.
func ForContentNotFound(root string) string {
	hint := "files are resolved under " + root
	if os.Getenv(RootEnvVar) == "" {
		hint += "; use --root or set " + RootEnvVar
	}
	return format(hint)
}

// ForInvalidRoot returns hints when the content root cannot be opened.
func ForInvalidRoot() string {
	return format("the content root must be an existing directory; use --root or set " + RootEnvVar)
}

// ForPathTraversal returns hints when a filename escapes the content root.
func ForPathTraversal() string {
	return format("use a path relative to the content root without '..' segments")
}

// ForPermissionDenied returns hints for unreadable content files.
func ForPermissionDenied() string {
	return format("check the file is readable by the current user")
}

// ForTimeout returns a hint about increasing the read timeout.
func ForTimeout() string {
	return format("slow or network filesystems may need a longer --timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdcontent/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdcontent") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForHighlightStyle returns hints for unknown highlight styles.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
