package mdcontent

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdcontent/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrContentLoad matches every *ContentLoadError.
	ErrContentLoad = errors.New("content load failed")

	// Content load kinds, carried by ContentLoadError.Kind.
	ErrContentNotFound  = errors.New("content not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrContentRead      = errors.New("content read failed")
	ErrInvalidFilename  = errors.New("invalid filename")
	ErrPathTraversal    = errors.New("path escapes content root")

	ErrInvalidContentRoot = errors.New("invalid content root")
	ErrNilLoader          = errors.New("loader cannot be nil")

	// Link rewriting validation errors.
	ErrInvalidAnchor = errors.New("invalid anchor")
	ErrInvalidRoute  = errors.New("invalid route")

	// Rendering errors.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrUnknownStyle   = pipeline.ErrUnknownStyle
)

// ContentLoadError reports a failed content read for one filename.
// Kind is one of ErrContentNotFound, ErrPermissionDenied, ErrContentRead,
// ErrInvalidFilename, ErrPathTraversal, or a context error.
//
// The message names the file and the kind only; the underlying OS error is
// reachable through errors.Is/errors.As but never printed.
type ContentLoadError struct {
	Filename string
	Kind     error
	cause    error
}

func newContentLoadError(filename string, kind, cause error) *ContentLoadError {
	return &ContentLoadError{Filename: filename, Kind: kind, cause: cause}
}

func (e *ContentLoadError) Error() string {
	return fmt.Sprintf("loading content %q: %v", e.Filename, e.Kind)
}

// Unwrap exposes ErrContentLoad, the kind and the underlying cause.
func (e *ContentLoadError) Unwrap() []error {
	errs := []error{ErrContentLoad, e.Kind}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}
