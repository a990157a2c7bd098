package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// mediaAttrs lists the elements whose source attribute points at a media file.
var mediaAttrs = map[string]string{
	"img":    "src",
	"source": "src",
	"video":  "src",
	"audio":  "src",
}

// RewriteAssetPaths prefixes relative media paths with prefix so images
// stored next to the markdown resolve once the page is served.
// If prefix is empty, returns the HTML unchanged.
//
// Leaves alone:
//   - absolute paths, URLs, data URIs and in-page anchors
//   - paths climbing above the content root ("../x.png")
//   - srcset attributes and CSS url() references
func RewriteAssetPaths(htmlContent, prefix string) (string, error) {
	if prefix == "" {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, strings.TrimSuffix(prefix, "/"))

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// Fragments render only their children so no <html><body> wrapper appears.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, prefix string) {
	if n.Type == html.ElementNode {
		if attr, ok := mediaAttrs[n.Data]; ok {
			rewriteAttr(n, attr, prefix)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, prefix)
	}
}

func rewriteAttr(n *html.Node, attrName, prefix string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativeAsset(attr.Val) {
			continue
		}

		cleaned := path.Clean(attr.Val)
		if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
			continue
		}

		n.Attr[i].Val = prefix + "/" + cleaned
	}
}

// isRelativeAsset returns true if the path should be rewritten.
func isRelativeAsset(p string) bool {
	if p == "" {
		return false
	}

	lower := strings.ToLower(p)
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(lower, "//") {
		return false
	}

	if strings.HasPrefix(p, "#") || strings.HasPrefix(p, "/") || strings.Contains(p, ":") {
		return false
	}

	return true
}
