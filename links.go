package mdcontent

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Consultation anchor and the route it points to on the site.
const (
	ConsultationAnchor = "consultation"
	ConsultationRoute  = "/book-a-consultation"
)

// DefaultRoutes returns the anchor-to-route pairs used by TransformMarkdownLinks.
func DefaultRoutes() map[string]string {
	return map[string]string{ConsultationAnchor: ConsultationRoute}
}

var defaultRewriter = mustLinkRewriter(DefaultRoutes())

// TransformMarkdownLinks rewrites every "](#consultation)" link target to
// "](/book-a-consultation)". Bare "#consultation" text is left alone.
func TransformMarkdownLinks(content string) string {
	return defaultRewriter.Rewrite(content)
}

// LinkRewriter replaces markdown link targets of the form "](#anchor)" with
// "](route)". It is immutable and safe for concurrent use.
//
// Rewriting is idempotent: routes may not start with '#' and neither side
// may contain link delimiters, so a rewritten target never matches again.
type LinkRewriter struct {
	routes   map[string]string
	replacer *strings.Replacer
}

// NewLinkRewriter builds a rewriter from anchor (without '#') to route pairs.
// An empty map yields a rewriter that returns its input unchanged.
// Returns ErrInvalidAnchor or ErrInvalidRoute for unusable pairs.
func NewLinkRewriter(routes map[string]string) (*LinkRewriter, error) {
	anchors := make([]string, 0, len(routes))
	for anchor, route := range routes {
		if err := validateAnchor(anchor); err != nil {
			return nil, err
		}
		if err := validateRoute(anchor, route); err != nil {
			return nil, err
		}
		anchors = append(anchors, anchor)
	}
	sort.Strings(anchors)

	pairs := make([]string, 0, len(anchors)*2)
	copied := make(map[string]string, len(anchors))
	for _, anchor := range anchors {
		pairs = append(pairs, "](#"+anchor+")", "]("+routes[anchor]+")")
		copied[anchor] = routes[anchor]
	}

	return &LinkRewriter{
		routes:   copied,
		replacer: strings.NewReplacer(pairs...),
	}, nil
}

func mustLinkRewriter(routes map[string]string) *LinkRewriter {
	r, err := NewLinkRewriter(routes)
	if err != nil {
		panic("mdcontent: " + err.Error())
	}
	return r
}

// Rewrite returns content with every known anchor link target replaced.
func (r *LinkRewriter) Rewrite(content string) string {
	return r.replacer.Replace(content)
}

// Routes returns a copy of the anchor-to-route pairs.
func (r *LinkRewriter) Routes() map[string]string {
	out := make(map[string]string, len(r.routes))
	for k, v := range r.routes {
		out[k] = v
	}
	return out
}

const linkDelimiters = "()[]"

func validateAnchor(anchor string) error {
	if anchor == "" {
		return fmt.Errorf("%w: empty anchor", ErrInvalidAnchor)
	}
	if strings.ContainsAny(anchor, "#"+linkDelimiters) || strings.IndexFunc(anchor, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidAnchor, anchor)
	}
	return nil
}

func validateRoute(anchor, route string) error {
	if route == "" {
		return fmt.Errorf("%w: empty route for anchor %q", ErrInvalidRoute, anchor)
	}
	if strings.HasPrefix(route, "#") {
		return fmt.Errorf("%w: route %q for anchor %q is itself an anchor", ErrInvalidRoute, route, anchor)
	}
	if strings.ContainsAny(route, linkDelimiters) || strings.IndexFunc(route, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRoute, route)
	}
	return nil
}
