package catalog2js

import (
	"errors"

	"github.com/alnah/go-catalog2js/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrReadInput      = errors.New("failed to read catalog")
	ErrMissingColumn  = errors.New("missing required column")
	ErrMarkdownRender = errors.New("markdown rendering failed")
	ErrWriteOutput    = errors.New("failed to write output")

	// Script options validation errors.
	ErrInvalidIdentifier = errors.New("invalid JavaScript identifier")

	// Converter option errors.
	ErrInvalidWorkers = errors.New("invalid worker count")
	ErrInvalidBaseURL = pipeline.ErrInvalidBaseURL
)
