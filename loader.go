package mdcontent

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mdcontent/internal/fileutil"
	"github.com/alnah/go-mdcontent/internal/logging"
)

// DefaultReadTimeout is used when no read timeout is specified.
const DefaultReadTimeout = 10 * time.Second

// Loader reads markdown files from a fixed content root.
// A Loader holds no mutable state and is safe for concurrent use.
type Loader struct {
	root        string
	readTimeout time.Duration
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithReadTimeout bounds each Load call.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithReadTimeout(d time.Duration) LoaderOption {
	if d <= 0 {
		panic("mdcontent: WithReadTimeout duration must be positive")
	}
	return func(l *Loader) {
		l.readTimeout = d
	}
}

// NewLoader creates a Loader rooted at root.
// The root is made absolute and symlink-resolved once, here.
// Returns ErrInvalidContentRoot if root is empty, missing, or not a directory.
func NewLoader(root string, opts ...LoaderOption) (*Loader, error) {
	resolved, err := fileutil.ResolveBase(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidContentRoot, root, err)
	}

	l := &Loader{
		root:        resolved,
		readTimeout: DefaultReadTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// ContextWithLogger returns a copy of ctx whose Load calls log to logger.
func ContextWithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return logging.WithLogger(ctx, logger)
}

// Root returns the resolved content root.
func (l *Loader) Root() string {
	return l.root
}

// ReadTimeout returns the bound applied to each Load call.
func (l *Loader) ReadTimeout() time.Duration {
	return l.readTimeout
}

// Load reads filename, relative to the content root, and returns its text.
// Every failure is a *ContentLoadError matching ErrContentLoad.
func (l *Loader) Load(ctx context.Context, filename string) (*Document, error) {
	logger := logging.FromContext(ctx)

	path, err := fileutil.ResolveWithin(l.root, filename)
	if err != nil {
		kind := ErrPathTraversal
		if errors.Is(err, fileutil.ErrNameEmpty) {
			kind = ErrInvalidFilename
		}
		logger.Debug("content rejected", logging.FieldFile, filename, logging.FieldError, err)
		return nil, newContentLoadError(filename, kind, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, newContentLoadError(filename, err, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, l.readTimeout)
	defer cancel()

	type result struct {
		data []byte
		err  error
	}

	start := time.Now()
	done := make(chan result, 1)

	go func() {
		data, err := os.ReadFile(path) // #nosec G304 -- path contained by ResolveWithin
		done <- result{data: data, err: err}
	}()

	var r result
	select {
	case <-ctx.Done():
		logger.Debug("content read aborted", logging.FieldFile, filename, logging.FieldError, ctx.Err())
		return nil, newContentLoadError(filename, ctx.Err(), nil)
	case r = <-done:
	}

	if r.err != nil {
		logger.Debug("content read failed", logging.FieldFile, filename, logging.FieldError, r.err)
		return nil, newContentLoadError(filename, classifyReadError(r.err), r.err)
	}

	logger.Debug("content loaded",
		logging.FieldFile, filename,
		logging.FieldBytes, len(r.data),
		logging.FieldDuration, time.Since(start),
	)

	return &Document{Content: string(r.data)}, nil
}

// classifyReadError maps an os.ReadFile error to a load kind.
func classifyReadError(err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return ErrContentNotFound
	case errors.Is(err, os.ErrPermission):
		return ErrPermissionDenied
	default:
		return ErrContentRead
	}
}
