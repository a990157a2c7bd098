package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiscoverContent(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"home.md":              "# Home",
		"services.markdown":    "# Services",
		"README.MD":            "# Readme",
		"blog/2024/post.md":    "# Post",
		"images/logo.png":      "png",
		"notes.txt":            "text",
		".drafts/secret.md":    "# Hidden dir",
		".hidden.md":           "# Hidden file",
		"blog/.cache/entry.md": "# Cached",
	})

	got, err := discoverContent(root)
	if err != nil {
		t.Fatalf("discoverContent() error = %v", err)
	}

	want := []string{
		"README.MD",
		filepath.Join("blog", "2024", "post.md"),
		"home.md",
		"services.markdown",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("discoverContent() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverContent_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := discoverContent(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("discoverContent() expected error for missing root")
	}
}

func TestValidateMarkdownExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"home.md", false},
		{"blog/post.markdown", false},
		{"UPPER.MD", false},
		{"notes.txt", true},
		{"noext", true},
	}

	for _, tt := range tests {
		err := validateMarkdownExtension(tt.path)
		if tt.wantErr != errors.Is(err, ErrInvalidExtension) {
			t.Errorf("validateMarkdownExtension(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestPlanJobs(t *testing.T) {
	t.Parallel()

	got := planJobs([]string{"home.md", filepath.Join("blog", "post.markdown")}, "public")
	want := []renderJob{
		{Filename: "home.md", OutputPath: filepath.Join("public", "home.html")},
		{Filename: filepath.Join("blog", "post.markdown"), OutputPath: filepath.Join("public", "blog", "post.html")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("planJobs() mismatch (-want +got):\n%s", diff)
	}
}

func TestIsHTMLPath(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{
		"out.html":   true,
		"out.HTM":    true,
		"public":     false,
		"public/":    false,
		"page.md":    false,
		"a.html/dir": false,
	} {
		if got := isHTMLPath(path); got != want {
			t.Errorf("isHTMLPath(%q) = %v, want %v", path, got, want)
		}
	}
}
