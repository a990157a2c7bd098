package mdcontent

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdcontent/internal/logging"
)

// ---------------------------------------------------------------------------
// TestNewPageBuilder - Construction
// ---------------------------------------------------------------------------

func TestNewPageBuilder_NilLoader(t *testing.T) {
	t.Parallel()

	_, err := NewPageBuilder(nil)
	if !errors.Is(err, ErrNilLoader) {
		t.Errorf("NewPageBuilder(nil) error = %v, want ErrNilLoader", err)
	}
}

func TestNewPageBuilder_NilRewriterFallsBack(t *testing.T) {
	t.Parallel()

	root := writeContent(t, map[string]string{"a.md": "[Book](#consultation)"})
	b, err := NewPageBuilder(newTestLoader(t, root), WithLinkRewriter(nil))
	if err != nil {
		t.Fatalf("NewPageBuilder() error = %v", err)
	}

	page, err := b.Build(context.Background(), "a.md")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if page.Markdown != "[Book](/book-a-consultation)" {
		t.Errorf("Markdown = %q, want default rewrite", page.Markdown)
	}
}

// ---------------------------------------------------------------------------
// TestPageBuilder_Build - Full pipeline
// ---------------------------------------------------------------------------

func TestPageBuilder_Build(t *testing.T) {
	t.Parallel()

	root := writeContent(t, map[string]string{
		"services.md": "# Our Services\n\n![Team](images/team.png)\n\n[Book a call](#consultation)\n",
	})
	b, err := NewPageBuilder(newTestLoader(t, root))
	if err != nil {
		t.Fatalf("NewPageBuilder() error = %v", err)
	}

	page, err := b.Build(context.Background(), "services.md")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if page.Filename != "services.md" {
		t.Errorf("Filename = %q, want %q", page.Filename, "services.md")
	}
	if page.Title != "Our Services" {
		t.Errorf("Title = %q, want %q", page.Title, "Our Services")
	}
	if !strings.Contains(page.Markdown, "[Book a call](/book-a-consultation)") {
		t.Errorf("Markdown not rewritten:\n%s", page.Markdown)
	}
	if !strings.Contains(page.HTML, `href="/book-a-consultation"`) {
		t.Errorf("HTML missing rewritten link:\n%s", page.HTML)
	}
	if !strings.Contains(page.HTML, `src="images/team.png"`) {
		t.Errorf("HTML image path changed without prefix:\n%s", page.HTML)
	}
	if strings.Contains(page.HTML, "<!DOCTYPE html>") {
		t.Errorf("fragment output contains doctype:\n%s", page.HTML)
	}
}

func TestPageBuilder_Build_AssetPrefix(t *testing.T) {
	t.Parallel()

	root := writeContent(t, map[string]string{
		"about.md": "![Team](images/team.png)\n\n![Remote](https://example.com/x.png)\n",
	})
	b, err := NewPageBuilder(newTestLoader(t, root), WithAssetPrefix("/content/"))
	if err != nil {
		t.Fatalf("NewPageBuilder() error = %v", err)
	}

	page, err := b.Build(context.Background(), "about.md")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !strings.Contains(page.HTML, `src="/content/images/team.png"`) {
		t.Errorf("relative image not prefixed:\n%s", page.HTML)
	}
	if !strings.Contains(page.HTML, `src="https://example.com/x.png"`) {
		t.Errorf("remote image rewritten:\n%s", page.HTML)
	}
}

func TestPageBuilder_Build_Standalone(t *testing.T) {
	t.Parallel()

	root := writeContent(t, map[string]string{
		"home.md": "# Welcome <Home> & More\n\n```go\nfunc main() {}\n```\n",
	})
	b, err := NewPageBuilder(newTestLoader(t, root), WithStandalone(true))
	if err != nil {
		t.Fatalf("NewPageBuilder() error = %v", err)
	}

	page, err := b.Build(context.Background(), "home.md")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Welcome &lt;Home&gt; &amp; More</title>",
		"<style>",
		".chroma",
		"<main>",
		`class="chroma"`,
	} {
		if !strings.Contains(page.HTML, want) {
			t.Errorf("standalone HTML missing %q:\n%s", want, page.HTML)
		}
	}
}

func TestPageBuilder_Build_CustomRewriter(t *testing.T) {
	t.Parallel()

	links, err := NewLinkRewriter(map[string]string{"pricing": "/plans"})
	if err != nil {
		t.Fatalf("NewLinkRewriter() error = %v", err)
	}
	root := writeContent(t, map[string]string{
		"a.md": "[Plans](#pricing) [Book](#consultation)",
	})
	b, err := NewPageBuilder(newTestLoader(t, root), WithLinkRewriter(links))
	if err != nil {
		t.Fatalf("NewPageBuilder() error = %v", err)
	}

	page, err := b.Build(context.Background(), "a.md")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if page.Markdown != "[Plans](/plans) [Book](#consultation)" {
		t.Errorf("Markdown = %q", page.Markdown)
	}
}

func TestPageBuilder_Build_LoaderErrorUnchanged(t *testing.T) {
	t.Parallel()

	root := writeContent(t, nil)
	b, err := NewPageBuilder(newTestLoader(t, root))
	if err != nil {
		t.Fatalf("NewPageBuilder() error = %v", err)
	}

	_, err = b.Build(context.Background(), "missing.md")

	var loadErr *ContentLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Build() error = %v, want *ContentLoadError", err)
	}
	if !errors.Is(err, ErrContentNotFound) {
		t.Errorf("Build() error = %v, want ErrContentNotFound", err)
	}
	if loadErr.Filename != "missing.md" {
		t.Errorf("Filename = %q, want %q", loadErr.Filename, "missing.md")
	}
}

func TestPageBuilder_Build_FrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantDraft bool
		wantBody  string
	}{
		{
			name:      "yaml title wins over heading",
			content:   "---\ntitle: Book a Call\ndraft: true\n---\n# Heading\n\n[Go](#consultation)\n",
			wantTitle: "Book a Call",
			wantDraft: true,
			wantBody:  "# Heading\n\n[Go](/book-a-consultation)\n",
		},
		{
			name:      "toml block",
			content:   "+++\ntitle = \"Pricing\"\n+++\nBody\n",
			wantTitle: "Pricing",
			wantBody:  "Body\n",
		},
		{
			name:      "block without title falls back to heading",
			content:   "---\ndraft: false\n---\n# About Us\n",
			wantTitle: "About Us",
			wantBody:  "# About Us\n",
		},
		{
			name:      "no block",
			content:   "# Plain\n",
			wantTitle: "Plain",
			wantBody:  "# Plain\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := writeContent(t, map[string]string{"page.md": tt.content})
			b, err := NewPageBuilder(newTestLoader(t, root))
			if err != nil {
				t.Fatalf("NewPageBuilder() error = %v", err)
			}

			page, err := b.Build(context.Background(), "page.md")
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if page.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", page.Title, tt.wantTitle)
			}
			if page.Meta.Draft != tt.wantDraft {
				t.Errorf("Meta.Draft = %v, want %v", page.Meta.Draft, tt.wantDraft)
			}
			if page.Markdown != tt.wantBody {
				t.Errorf("Markdown = %q, want %q", page.Markdown, tt.wantBody)
			}
			if strings.Contains(page.HTML, "title:") || strings.Contains(page.HTML, "<hr") {
				t.Errorf("front matter leaked into HTML:\n%s", page.HTML)
			}
		})
	}
}

func TestPageBuilder_Build_LeadingThematicBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantHTML  string
		wantLog   bool
	}{
		{
			name:      "rules around intro",
			content:   "---\n\nIntro paragraph.\n\n---\n\n# Services\n\n[Book](#consultation)\n",
			wantTitle: "Services",
			wantHTML:  "Intro paragraph.",
		},
		{
			name:      "yaml-like text between rules stays in body",
			content:   "---\n\ntitle: Hidden\n\n---\n\n# Real\n",
			wantTitle: "Real",
			wantHTML:  "title: Hidden",
		},
		{
			name:      "undecodable block stays in body",
			content:   "---\ntitle: [unclosed\n---\n# Heading\n",
			wantTitle: "Heading",
			wantHTML:  "title: [unclosed",
			wantLog:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := writeContent(t, map[string]string{"page.md": tt.content})
			b, err := NewPageBuilder(newTestLoader(t, root))
			if err != nil {
				t.Fatalf("NewPageBuilder() error = %v", err)
			}

			var logs bytes.Buffer
			ctx := ContextWithLogger(context.Background(), logging.New(&logs, "debug"))

			page, err := b.Build(ctx, "page.md")
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if page.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", page.Title, tt.wantTitle)
			}
			if page.Meta != (FrontMatter{}) {
				t.Errorf("Meta = %+v, want zero", page.Meta)
			}
			if want := TransformMarkdownLinks(tt.content); page.Markdown != want {
				t.Errorf("Markdown = %q, want %q", page.Markdown, want)
			}
			if !strings.Contains(page.HTML, tt.wantHTML) {
				t.Errorf("HTML missing %q:\n%s", tt.wantHTML, page.HTML)
			}
			if got := strings.Contains(logs.String(), "front matter ignored"); got != tt.wantLog {
				t.Errorf("front matter debug log = %v, want %v:\n%s", got, tt.wantLog, logs.String())
			}
		})
	}
}

func TestPageBuilder_Build_TitleSkipsCodeBlocks(t *testing.T) {
	t.Parallel()

	root := writeContent(t, map[string]string{
		"setup.md": "Intro text.\n\n```bash\n# install deps\nnpm i\n```\n\n# Real Title\n",
	})
	b, err := NewPageBuilder(newTestLoader(t, root), WithStandalone(true))
	if err != nil {
		t.Fatalf("NewPageBuilder() error = %v", err)
	}

	page, err := b.Build(context.Background(), "setup.md")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if page.Title != "Real Title" {
		t.Errorf("Title = %q, want %q", page.Title, "Real Title")
	}
	if !strings.Contains(page.HTML, "<title>Real Title</title>") {
		t.Errorf("HTML missing <title>Real Title</title>:\n%s", page.HTML)
	}
}

// ---------------------------------------------------------------------------
// TestPageTitle - Title extraction
// ---------------------------------------------------------------------------

func TestPageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		filename string
		want     string
	}{
		{"first h1", "intro\n# First\n# Second", "a.md", "First"},
		{"trailing spaces", "#   Spaced   ", "a.md", "Spaced"},
		{"h2 ignored", "## Sub\ntext", "about-us.md", "about-us"},
		{"no heading", "plain text", "services.md", "services"},
		{"empty heading", "#\nnot a title", "faq.md", "faq"},
		{"fenced comment", "```sh\n# install\n```\n\n# Setup", "setup.md", "Setup"},
		{"only fenced comment", "```sh\n# install\n```\n", "setup.md", "setup"},
		{"nested file", "", "blog/post-1.md", "post-1"},
		{"no extension", "", "README", "README"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pageTitle(tt.markdown, tt.filename); got != tt.want {
				t.Errorf("pageTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
