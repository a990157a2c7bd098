package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// renderJob pairs a content filename with its output path.
type renderJob struct {
	Filename   string // Relative to the content root
	OutputPath string
}

// discoverContent lists markdown files below root, relative to root, in
// lexical order. Hidden files and directories are skipped.
func discoverContent(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdownFile(path) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})

	return files, err
}

// isMarkdownFile reports whether path has a .md or .markdown extension.
func isMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// isHTMLPath reports whether an --output value names a single HTML file.
func isHTMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

// planJobs maps content filenames to HTML files under outputDir, keeping
// the directory structure of the content root.
func planJobs(filenames []string, outputDir string) []renderJob {
	jobs := make([]renderJob, len(filenames))
	for i, name := range filenames {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		jobs[i] = renderJob{
			Filename:   name,
			OutputPath: filepath.Join(outputDir, base+".html"),
		}
	}
	return jobs
}
