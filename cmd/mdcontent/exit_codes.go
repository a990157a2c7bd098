package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdcontent"
	"github.com/alnah/go-mdcontent/internal/config"
)

// Exit codes for the mdcontent CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error, failed pages
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Content or output not found, unreadable, or unwritable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, mdcontent.ErrInvalidFilename) ||
		errors.Is(err, mdcontent.ErrPathTraversal) ||
		errors.Is(err, mdcontent.ErrUnknownStyle) ||
		errors.Is(err, mdcontent.ErrInvalidAnchor) ||
		errors.Is(err, mdcontent.ErrInvalidRoute) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, mdcontent.ErrContentNotFound) ||
		errors.Is(err, mdcontent.ErrPermissionDenied) ||
		errors.Is(err, mdcontent.ErrContentRead) ||
		errors.Is(err, mdcontent.ErrInvalidContentRoot) ||
		errors.Is(err, ErrNoContent) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
