package main

import (
	"context"
	"fmt"
)

// runRaw prints a content file with its anchor links rewritten.
// The markdown is otherwise byte-for-byte what is on disk.
func runRaw(ctx context.Context, args []string, env *Environment) error {
	flags, filenames, err := parseRawFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(filenames) != 1 {
		return fmt.Errorf("%w: raw takes exactly one file, got %d", ErrInvalidFlags, len(filenames))
	}

	ctx, cfg, loader, err := setup(ctx, &flags.common, env)
	if err != nil {
		return err
	}

	links, err := newLinkRewriter(cfg)
	if err != nil {
		return err
	}

	doc, err := loader.Load(ctx, filenames[0])
	if err != nil {
		return withRoot(err, loader.Root())
	}
	markdown := links.Rewrite(doc.Content)

	if flags.output == "" {
		_, err = fmt.Fprint(env.Stdout, markdown)
		return err
	}
	return writeOutput(flags.output, markdown)
}
