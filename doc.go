// Package mdcontent loads markdown pages for a website and prepares them for
// rendering.
//
// # Quick Start
//
// Create a loader for the content directory, load a page, and rewrite its
// consultation links:
//
//	loader, err := mdcontent.NewLoader("./content")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := loader.Load(ctx, "home.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	markdown := mdcontent.TransformMarkdownLinks(doc.Content)
//
// TransformMarkdownLinks turns "[Book](#consultation)" into
// "[Book](/book-a-consultation)". It only touches link targets, so a bare
// "#consultation" in prose stays as written.
//
// # Errors
//
// Every Load failure is a *ContentLoadError naming the requested file. All of
// them match ErrContentLoad; the Kind field narrows the cause:
//
//	var loadErr *mdcontent.ContentLoadError
//	switch {
//	case errors.Is(err, mdcontent.ErrContentNotFound):
//	    // render a 404 page
//	case errors.As(err, &loadErr):
//	    // loadErr.Filename, loadErr.Kind
//	}
//
// Filenames are resolved inside the content root. Absolute paths, ".."
// segments and symlinks pointing outside the root fail with ErrPathTraversal.
//
// # Rendering
//
// PageBuilder chains loading, link rewriting and HTML rendering:
//
//	builder, err := mdcontent.NewPageBuilder(loader,
//	    mdcontent.WithAssetPrefix("/content"),
//	    mdcontent.WithStandalone(true),
//	)
//	page, err := builder.Build(ctx, "services.md")
//	// page.Title, page.Markdown, page.HTML
//
// Rendering uses Goldmark (GFM, footnotes, heading IDs) with Chroma syntax
// highlighting. Raw HTML in markdown is never passed through.
//
// A leading YAML (---), TOML (+++) or JSON front matter block is stripped
// before rendering and exposed as page.Meta. Its title wins over the first
// heading; draft pages are still built, callers decide whether to publish.
//
// # Custom Routes
//
// Other in-page anchors can be mapped to routes:
//
//	links, err := mdcontent.NewLinkRewriter(map[string]string{
//	    "consultation": "/book-a-consultation",
//	    "pricing":      "/plans",
//	})
//	builder, err := mdcontent.NewPageBuilder(loader, mdcontent.WithLinkRewriter(links))
//
// # Logging
//
// Loader emits debug records through the charmbracelet/log logger attached
// with ContextWithLogger, or a stderr logger at info level otherwise.
package mdcontent
