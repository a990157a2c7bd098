package mdcontent

// Document is a markdown file as stored on disk.
// A fresh Document is returned by every Load; nothing retains it.
type Document struct {
	Content string // Raw file text, byte for byte
}

// Page is a content file after link rewriting and rendering.
type Page struct {
	Filename string      // As requested, relative to the content root
	Title    string      // Front matter title, first "# " heading, or the filename without extension
	Meta     FrontMatter // Zero when the file has no front matter
	Markdown string      // Body after front matter removal and anchor link rewriting
	HTML     string      // Fragment, or full document in standalone mode
}
