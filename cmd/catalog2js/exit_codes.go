package main

import (
	"errors"
	"os"

	catalog2js "github.com/alnah/go-catalog2js"
	"github.com/alnah/go-catalog2js/internal/config"
	"github.com/alnah/go-catalog2js/internal/dateutil"
	"github.com/alnah/go-catalog2js/internal/fileutil"
	"github.com/alnah/go-catalog2js/internal/pipeline"
)

// Exit codes for catalog2js CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Catalog written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitData    = 4 // Catalog content problems: missing column, render failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// Data and usage checks run before I/O because load errors wrap both
// ErrReadInput and their cause.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Data errors (exit 4)
	if errors.Is(err, catalog2js.ErrMissingColumn) ||
		errors.Is(err, catalog2js.ErrMarkdownRender) ||
		errors.Is(err, catalog2js.ErrNoHeader) {
		return ExitData
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrSamePath) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, catalog2js.ErrInvalidIdentifier) ||
		errors.Is(err, catalog2js.ErrUnsupportedFormat) ||
		errors.Is(err, catalog2js.ErrSheetNotFound) ||
		errors.Is(err, pipeline.ErrUnknownHighlightStyle) ||
		errors.Is(err, pipeline.ErrInvalidBaseURL) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrIsDirectory) ||
		errors.Is(err, catalog2js.ErrReadInput) ||
		errors.Is(err, catalog2js.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
