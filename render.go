package mdcontent

import (
	"context"

	"github.com/alnah/go-mdcontent/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Renderer converts markdown to an HTML fragment.
// It never loads files and never rewrites links; callers do that first.
type Renderer struct {
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	goldmark      *pipeline.GoldmarkConverter
}

// RendererOption configures a Renderer.
type RendererOption func(*pipeline.ConverterOptions)

// WithHardWraps renders single newlines as <br>.
func WithHardWraps(enabled bool) RendererOption {
	return func(o *pipeline.ConverterOptions) {
		o.HardWraps = enabled
	}
}

// WithHighlightStyle selects the Chroma style for code blocks.
func WithHighlightStyle(name string) RendererOption {
	return func(o *pipeline.ConverterOptions) {
		o.HighlightStyle = name
	}
}

// NewRenderer creates a Renderer with GFM, footnotes, heading IDs and
// class-based code highlighting. Returns ErrUnknownStyle for a bad style.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	var cfg pipeline.ConverterOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	gm, err := pipeline.NewGoldmarkConverter(cfg)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: gm,
		goldmark:      gm,
	}, nil
}

// Render converts markdown to an HTML fragment.
func (r *Renderer) Render(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	content := r.preprocessor.PreprocessMarkdown(ctx, markdown)
	return r.htmlConverter.ToHTML(ctx, content)
}

// HighlightCSS returns the stylesheet for the classes used in code blocks.
func (r *Renderer) HighlightCSS() (string, error) {
	return r.goldmark.HighlightCSS()
}

// HighlightStyles lists the accepted WithHighlightStyle names.
func HighlightStyles() []string {
	return pipeline.AvailableStyles()
}
