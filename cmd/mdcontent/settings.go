package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mdcontent"
	"github.com/alnah/go-mdcontent/internal/config"
	"github.com/alnah/go-mdcontent/internal/logging"
)

// loadConfig returns the configuration for a command.
// Priority for each value: flag > environment > config file > default.
func loadConfig(f *commonFlags, env *Environment) (*config.Config, error) {
	name := f.config
	if name == "" {
		name = env.Getenv(envConfig)
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	if root := env.Getenv(envRoot); root != "" {
		cfg.Content.Root = root
	}
	if f.root != "" {
		cfg.Content.Root = f.root
	}
	if f.timeout != "" {
		cfg.Content.ReadTimeout = f.timeout
	}

	return cfg, nil
}

// mergeRenderFlags applies render flags onto cfg (CLI wins).
// Boolean flags only switch features on.
func mergeRenderFlags(f *renderOutputFlags, cfg *config.Config) {
	if f.standalone {
		cfg.Render.Standalone = true
	}
	if f.hardWraps {
		cfg.Render.HardWraps = true
	}
	if f.style != "" {
		cfg.Render.HighlightStyle = f.style
	}
	if f.assetPrefix != "" {
		cfg.Render.AssetPrefix = f.assetPrefix
	}
}

// newLogger creates the command logger from --quiet and --verbose.
func newLogger(env *Environment, f *commonFlags) *log.Logger {
	level := "info"
	switch {
	case f.verbose:
		level = "debug"
	case f.quiet:
		level = "error"
	}
	return logging.New(env.Stderr, level)
}

// setup loads configuration, attaches the logger to ctx and opens the loader.
func setup(ctx context.Context, f *commonFlags, env *Environment) (context.Context, *config.Config, *mdcontent.Loader, error) {
	logger := newLogger(env, f)
	ctx = logging.WithLogger(ctx, logger)

	for _, name := range unknownEnvVars(env) {
		logger.Warn("unknown environment variable (typo?)", "name", name)
	}

	cfg, err := loadConfig(f, env)
	if err != nil {
		return ctx, nil, nil, err
	}

	loader, err := newLoader(cfg)
	if err != nil {
		return ctx, nil, nil, err
	}

	logger.Debug("content root", logging.FieldRoot, loader.Root())
	return ctx, cfg, loader, nil
}

// newLoader opens the configured content root.
// An unset read timeout keeps mdcontent.DefaultReadTimeout.
func newLoader(cfg *config.Config) (*mdcontent.Loader, error) {
	timeout, err := cfg.Content.ReadTimeoutDuration()
	if err != nil {
		return nil, err
	}
	var opts []mdcontent.LoaderOption
	if timeout > 0 {
		opts = append(opts, mdcontent.WithReadTimeout(timeout))
	}
	return mdcontent.NewLoader(cfg.Content.Root, opts...)
}

// newLinkRewriter builds the configured rewriter, or the consultation default.
func newLinkRewriter(cfg *config.Config) (*mdcontent.LinkRewriter, error) {
	routes := cfg.Links.Routes
	if routes == nil {
		routes = mdcontent.DefaultRoutes()
	}
	links, err := mdcontent.NewLinkRewriter(routes)
	if err != nil {
		return nil, fmt.Errorf("links.routes: %w", err)
	}
	return links, nil
}

// newPageBuilder wires the loader, rewriter and renderer from cfg.
func newPageBuilder(loader *mdcontent.Loader, links *mdcontent.LinkRewriter, cfg *config.Config) (*mdcontent.PageBuilder, error) {
	renderer, err := mdcontent.NewRenderer(
		mdcontent.WithHardWraps(cfg.Render.HardWraps),
		mdcontent.WithHighlightStyle(cfg.Render.HighlightStyle),
	)
	if err != nil {
		return nil, err
	}

	return mdcontent.NewPageBuilder(loader,
		mdcontent.WithLinkRewriter(links),
		mdcontent.WithRenderer(renderer),
		mdcontent.WithAssetPrefix(cfg.Render.AssetPrefix),
		mdcontent.WithStandalone(cfg.Render.Standalone),
	)
}
