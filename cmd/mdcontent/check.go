package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alnah/go-mdcontent/internal/linkcheck"
)

// Check statuses, from best to worst.
const (
	statusOK       = "ok"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// checkReport holds the result of checking every content page.
type checkReport struct {
	Status string       `json:"status"`
	Root   string       `json:"root"`
	Pages  []pageReport `json:"pages"`
}

// pageReport holds the findings for one page.
type pageReport struct {
	File            string   `json:"file"`
	Title           string   `json:"title,omitempty"`
	Draft           bool     `json:"draft,omitempty"`
	DanglingAnchors []string `json:"danglingAnchors,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// runCheck builds every page and reports load failures and in-page links
// with no target. Dangling anchors are warnings; failed pages are errors.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	flags, filenames, err := parseCheckFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	ctx, cfg, loader, err := setup(ctx, &flags.common, env)
	if err != nil {
		return err
	}
	root := loader.Root()

	links, err := newLinkRewriter(cfg)
	if err != nil {
		return err
	}
	builder, err := newPageBuilder(loader, links, cfg)
	if err != nil {
		return err
	}

	if len(filenames) == 0 {
		filenames, err = discoverContent(root)
		if err != nil {
			return withRoot(err, root)
		}
	}

	report := &checkReport{Status: statusOK, Root: root, Pages: make([]pageReport, 0, len(filenames))}
	for _, name := range filenames {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.add(checkPage(ctx, builder, name))
	}

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else if !flags.common.quiet || report.Status != statusOK {
		printCheckReport(env.Stdout, report, flags.common.verbose)
	}

	if report.Status == statusErrors {
		return ErrCheckFailed
	}
	return nil
}

// checkPage builds one page and collects its findings.
func checkPage(ctx context.Context, builder PageRenderer, name string) pageReport {
	pr := pageReport{File: name}

	page, err := builder.Build(ctx, name)
	if err != nil {
		pr.Error = err.Error()
		return pr
	}
	pr.Title = page.Title
	pr.Draft = page.Meta.Draft

	dangling, err := linkcheck.DanglingAnchors(page.HTML)
	if err != nil {
		pr.Error = err.Error()
		return pr
	}
	pr.DanglingAnchors = dangling
	return pr
}

// add appends pr and raises the report status if needed.
func (r *checkReport) add(pr pageReport) {
	r.Pages = append(r.Pages, pr)
	switch {
	case pr.Error != "":
		r.Status = statusErrors
	case len(pr.DanglingAnchors) > 0 && r.Status == statusOK:
		r.Status = statusWarnings
	}
}

// printCheckReport outputs the report in human-readable format.
func printCheckReport(w io.Writer, r *checkReport, verbose bool) {
	fmt.Fprintf(w, "Content root: %s\n\n", r.Root)

	for _, p := range r.Pages {
		switch {
		case p.Error != "":
			fmt.Fprintf(w, "  [ERROR] %s: %s\n", p.File, p.Error)
		case len(p.DanglingAnchors) > 0:
			fmt.Fprintf(w, "  [WARN]  %s: no target for", p.File)
			for _, a := range p.DanglingAnchors {
				fmt.Fprintf(w, " #%s", a)
			}
			fmt.Fprintln(w)
		case verbose:
			draft := ""
			if p.Draft {
				draft = " (draft)"
			}
			fmt.Fprintf(w, "  [OK]    %s: %q%s\n", p.File, p.Title, draft)
		}
	}

	fmt.Fprintf(w, "\nStatus: %s (%d pages)\n", r.Status, len(r.Pages))
}
