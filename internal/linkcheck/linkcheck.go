// Package linkcheck finds in-page anchor links that point at no element.
package linkcheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DanglingAnchors returns the sorted, de-duplicated fragment names of
// href="#name" links in htmlContent that match no id in the same document.
// Bare "#" links are ignored.
func DanglingAnchors(htmlContent string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	ids := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			ids[id] = true
		}
	})

	seen := make(map[string]bool)
	var dangling []string
	doc.Find(`a[href^="#"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		name := strings.TrimPrefix(href, "#")
		if name == "" || ids[name] || seen[name] {
			return
		}
		seen[name] = true
		dangling = append(dangling, name)
	})

	sort.Strings(dangling)
	return dangling, nil
}
