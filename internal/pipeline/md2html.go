package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Sentinel errors for HTML conversion.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrUnknownStyle   = errors.New("unknown highlight style")
)

// DefaultHighlightStyle is the Chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// ConverterOptions configures a GoldmarkConverter.
type ConverterOptions struct {
	HardWraps      bool   // Treat single newlines as <br>
	HighlightStyle string // Chroma style name (empty = DefaultHighlightStyle)
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
type GoldmarkConverter struct {
	md    goldmark.Markdown
	style string
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// class-based syntax highlighting. Returns ErrUnknownStyle for a style Chroma
// does not know.
func NewGoldmarkConverter(opts ConverterOptions) (*GoldmarkConverter, error) {
	style := opts.HighlightStyle
	if style == "" {
		style = DefaultHighlightStyle
	}
	style = strings.ToLower(style)
	if _, ok := styles.Registry[style]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, opts.HighlightStyle)
	}

	rendererOpts := []goldmark.Option{}
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithHardWraps()))
	}

	md := goldmark.New(append(rendererOpts,
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // stylesheet comes from HighlightCSS
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // in-page anchors like #consultation
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe is never set: content authors cannot inject raw HTML.
		),
	)...)

	return &GoldmarkConverter{md: md, style: style}, nil
}

// ToHTML converts Markdown content to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the caller returns early on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: ConvertMarkPlaceholders(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// HighlightCSS returns the stylesheet matching the classes emitted by ToHTML.
func (c *GoldmarkConverter) HighlightCSS() (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(c.style)); err != nil {
		return "", fmt.Errorf("%w: writing highlight CSS: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// AvailableStyles lists the Chroma style names accepted by NewGoldmarkConverter.
func AvailableStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
