// Package pipeline implements the Markdown-to-HTML rendering stages used for
// website content:
//   - Markdown preprocessing (line normalization, highlight syntax)
//   - Markdown to HTML conversion via Goldmark with Chroma highlighting
//   - Rewriting relative media paths under a public asset prefix
//
// Loading content and rewriting anchor links happen before this package is
// involved; the root mdcontent package wires the stages together.
package pipeline
