package mdcontent

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdcontent/internal/pipeline"
)

var standaloneTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- if .CSS}}
<style>{{.CSS}}</style>
{{- end}}
</head>
<body>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// PageBuilder runs the content pipeline for one file:
// load, strip front matter, rewrite anchor links, render, rewrite media paths.
type PageBuilder struct {
	loader      *Loader
	links       *LinkRewriter
	renderer    *Renderer
	assetPrefix string
	standalone  bool
}

// PageOption configures a PageBuilder.
type PageOption func(*PageBuilder)

// WithLinkRewriter replaces the default consultation rewriter.
func WithLinkRewriter(r *LinkRewriter) PageOption {
	return func(b *PageBuilder) {
		b.links = r
	}
}

// WithRenderer replaces the default renderer.
func WithRenderer(r *Renderer) PageOption {
	return func(b *PageBuilder) {
		b.renderer = r
	}
}

// WithAssetPrefix serves relative images and media under prefix
// (e.g. "/content" turns images/a.png into /content/images/a.png).
func WithAssetPrefix(prefix string) PageOption {
	return func(b *PageBuilder) {
		b.assetPrefix = prefix
	}
}

// WithStandalone wraps output in a complete HTML5 document.
func WithStandalone(enabled bool) PageOption {
	return func(b *PageBuilder) {
		b.standalone = enabled
	}
}

// NewPageBuilder creates a PageBuilder reading through loader.
func NewPageBuilder(loader *Loader, opts ...PageOption) (*PageBuilder, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}

	b := &PageBuilder{
		loader: loader,
		links:  defaultRewriter,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.renderer == nil {
		r, err := NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("initializing renderer: %w", err)
		}
		b.renderer = r
	}
	if b.links == nil {
		b.links = defaultRewriter
	}

	return b, nil
}

// Build loads filename and returns the rendered page.
// Loader failures are returned unchanged, so errors.As(*ContentLoadError) works.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *PageBuilder) Build(ctx context.Context, filename string) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	doc, err := b.loader.Load(ctx, filename)
	if err != nil {
		return nil, err
	}

	meta, body := splitFrontMatter(ctx, filename, doc.Content)

	markdown := b.links.Rewrite(body)
	title := meta.Title
	if title == "" {
		title = pageTitle(markdown, filename)
	}

	fragment, err := b.renderer.Render(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("rendering %q: %w", filename, err)
	}

	fragment, err = pipeline.RewriteAssetPaths(fragment, b.assetPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: rewriting asset paths in %q: %v", ErrHTMLConversion, filename, err)
	}

	if b.standalone {
		fragment, err = b.wrapDocument(title, fragment)
		if err != nil {
			return nil, err
		}
	}

	return &Page{
		Filename: filename,
		Title:    title,
		Meta:     meta,
		Markdown: markdown,
		HTML:     fragment,
	}, nil
}

func (b *PageBuilder) wrapDocument(title, body string) (string, error) {
	css, err := b.renderer.HighlightCSS()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{
		Title: title,
		CSS:   template.CSS(css),   // #nosec G203 -- generated by Chroma
		Body:  template.HTML(body), // #nosec G203 -- rendered without raw HTML
	}
	if err := standaloneTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// pageTitle returns the first level-1 heading, falling back to the file's
// base name.
func pageTitle(markdown, filename string) string {
	if title := pipeline.FirstHeading(markdown); title != "" {
		return title
	}
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
