package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-mdcontent"
	"github.com/alnah/go-mdcontent/internal/config"
	"github.com/alnah/go-mdcontent/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags     = errors.New("invalid flags")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrNoOutput         = errors.New("--output directory is required for more than one file")
	ErrNoContent        = errors.New("no markdown files found")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrBuilderInit      = errors.New("failed to initialize page builder")
	ErrPoolClosed       = errors.New("builder pool is closed")
	ErrRenderFailed     = errors.New("some files failed to render")
	ErrCheckFailed      = errors.New("content check found errors")
)

// rootedError attaches the resolved content root to a failure so hints
// can name it.
type rootedError struct {
	root string
	err  error
}

func (e *rootedError) Error() string { return e.err.Error() }
func (e *rootedError) Unwrap() error { return e.err }

// withRoot wraps err with root; nil stays nil.
func withRoot(err error, root string) error {
	if err == nil {
		return nil
	}
	return &rootedError{root: root, err: err}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var rooted *rootedError
	root := ""
	if errors.As(err, &rooted) {
		root = rooted.root
	}

	switch {
	case errors.Is(err, mdcontent.ErrContentNotFound) && root != "":
		return hints.ForContentNotFound(root)
	case errors.Is(err, mdcontent.ErrInvalidContentRoot):
		return hints.ForInvalidRoot()
	case errors.Is(err, mdcontent.ErrPathTraversal):
		return hints.ForPathTraversal()
	case errors.Is(err, mdcontent.ErrPermissionDenied), errors.Is(err, os.ErrPermission):
		return hints.ForPermissionDenied()
	case errors.Is(err, mdcontent.ErrContentLoad) && errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, mdcontent.ErrUnknownStyle):
		return hints.ForHighlightStyle(mdcontent.HighlightStyles())
	}
	return ""
}
