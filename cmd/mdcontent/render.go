package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdcontent/internal/logging"
)

// runRender renders content files to HTML.
//
//	mdcontent render page.md             # HTML to stdout
//	mdcontent render page.md -o out.html # one file
//	mdcontent render -o public           # every page under the root
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, filenames, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	ctx, cfg, loader, err := setup(ctx, &flags.common, env)
	if err != nil {
		return err
	}
	mergeRenderFlags(&flags.html, cfg)
	root := loader.Root()
	logger := logging.FromContext(ctx)

	links, err := newLinkRewriter(cfg)
	if err != nil {
		return err
	}

	explicit := len(filenames) > 0
	if explicit {
		for _, name := range filenames {
			if err := validateMarkdownExtension(name); err != nil {
				return err
			}
		}
	} else {
		filenames, err = discoverContent(root)
		if err != nil {
			return withRoot(err, root)
		}
		if len(filenames) == 0 {
			return withRoot(fmt.Errorf("%w in %s", ErrNoContent, root), root)
		}
	}

	// A single named file goes to stdout or to an .html path.
	if explicit && len(filenames) == 1 && (flags.output == "" || isHTMLPath(flags.output)) {
		builder, err := newPageBuilder(loader, links, cfg)
		if err != nil {
			return err
		}
		page, err := builder.Build(ctx, filenames[0])
		if err != nil {
			return withRoot(err, root)
		}
		if flags.output == "" {
			_, err = fmt.Fprint(env.Stdout, page.HTML)
			return err
		}
		if err := writeOutput(flags.output, page.HTML); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
		}
		return nil
	}

	if flags.output == "" || isHTMLPath(flags.output) {
		return ErrNoOutput
	}

	jobs := planJobs(filenames, flags.output)
	size := resolvePoolSize(flags.workers, len(jobs))
	logger.Debug("rendering", "files", len(jobs), "workers", size, logging.FieldOutput, flags.output)

	pool := NewBuilderPool(size, func() (PageRenderer, error) {
		return newPageBuilder(loader, links, cfg)
	})
	defer pool.Close()

	// Named files are rendered even when marked draft.
	results := renderBatch(ctx, pool, jobs, explicit || flags.drafts)

	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return withRoot(fmt.Errorf("%w: %d of %d", ErrRenderFailed, failed, len(results)), root)
	}
	return nil
}
