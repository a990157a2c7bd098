package mdcontent

import (
	"context"
	"slices"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-mdcontent/internal/logging"
)

// FrontMatter holds the page metadata block at the top of a content file.
// YAML ("---"), TOML ("+++") and JSON (";;;") blocks are recognized.
type FrontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Draft bool   `yaml:"draft" toml:"draft" json:"draft"`
}

// Opening lines that may start a metadata block.
var frontMatterOpeners = []string{"---", "---yaml", "---toml", "---json", "+++", ";;;"}

// splitFrontMatter separates the metadata block from the markdown body.
// Content without a block, or whose block does not decode, is returned
// unchanged with zero FrontMatter: a leading "---" is also a markdown
// thematic break.
func splitFrontMatter(ctx context.Context, filename, content string) (FrontMatter, string) {
	if !hasFrontMatterBlock(content) {
		return FrontMatter{}, content
	}

	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		logging.FromContext(ctx).Debug("front matter ignored",
			logging.FieldFile, filename,
			logging.FieldError, err,
		)
		return FrontMatter{}, content
	}

	return meta, string(body)
}

// hasFrontMatterBlock reports whether content opens with a block delimiter
// directly followed by a non-blank line. A delimiter followed by a blank
// line is a thematic break.
func hasFrontMatterBlock(content string) bool {
	first, rest, ok := strings.Cut(content, "\n")
	if !ok {
		return false
	}
	if !slices.Contains(frontMatterOpeners, strings.TrimRight(first, " \t\r")) {
		return false
	}
	next, _, _ := strings.Cut(rest, "\n")
	return strings.TrimSpace(next) != ""
}
