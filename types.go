package catalog2js

import (
	"fmt"
	"runtime"
	"strings"
)

// Dataset is one catalog entry as the page consumes it.
// Field order is the JSON key order of the generated script.
type Dataset struct {
	ID             string   `json:"id" jsonschema:"required,description=Stable identifier of the dataset"`
	Name           string   `json:"name" jsonschema:"required"`
	Description    string   `json:"description" jsonschema:"required"`
	URL            string   `json:"url" jsonschema:"required"`
	Categories     []string `json:"categories" jsonschema:"required"`
	Source         string   `json:"source" jsonschema:"required,description=Publishing organization"`
	Region         []string `json:"region" jsonschema:"required"`
	Type           string   `json:"type" jsonschema:"required"`
	YearStart      string   `json:"yearStart" jsonschema:"required,description=First year covered as written in the sheet"`
	YearEnd        string   `json:"yearEnd" jsonschema:"required,description=Last year covered as written in the sheet"`
	Tags           []string `json:"tags" jsonschema:"required"`
	InvisibleTags  []string `json:"invisibleTags" jsonschema:"required,description=Search terms that are matched but not displayed"`
	AdditionalInfo string   `json:"additionalInfo" jsonschema:"required,description=Rendered HTML without newline characters"`
}

// Row is one source row keyed by header name. Blank cells are "".
type Row map[string]string

// Table is one loaded sheet.
type Table struct {
	Name    string   // Sheet name ("" for CSV)
	Columns []string // Header cells in sheet order
	Rows    []Row    // Data rows in sheet order
}

// RenderOptions selects optional markdown rendering features.
type RenderOptions struct {
	Highlight      bool   // Syntax-highlight fenced code blocks
	HighlightStyle string // chroma style; empty emits CSS classes
	DisableRawHTML bool   // Drop raw HTML embedded in markdown
}

// Worker sizing constants.
const (
	// MinWorkers ensures at least one renderer runs.
	MinWorkers = 1

	// MaxWorkers caps render goroutines; catalogs are small.
	MaxWorkers = 8
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	render      RenderOptions
	linksNewTab bool
	baseURL     string
	workers     int
}

// WithRenderOptions sets markdown rendering options.
func WithRenderOptions(opts RenderOptions) Option {
	return func(c *Converter) {
		c.cfg.render = opts
	}
}

// WithLinksNewTab makes absolute links in additionalInfo open in a new tab.
func WithLinksNewTab() Option {
	return func(c *Converter) {
		c.cfg.linksNewTab = true
	}
}

// WithBaseURL resolves relative links and images in additionalInfo against
// raw, an absolute http(s) URL. NewConverter reports an invalid value.
func WithBaseURL(raw string) Option {
	return func(c *Converter) {
		c.cfg.baseURL = raw
	}
}

// WithWorkers sets how many rows are rendered concurrently.
// Zero picks a value from GOMAXPROCS. Panics if n is negative.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("catalog2js: %v: %d", ErrInvalidWorkers, n))
	}
	return func(c *Converter) {
		c.cfg.workers = n
	}
}

// ResolveWorkers determines the render concurrency.
// Priority: explicit value > GOMAXPROCS-based calculation.
func ResolveWorkers(n int) int {
	if n > 0 {
		return n
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n = runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// ScriptOptions controls the names used in the generated script.
type ScriptOptions struct {
	Variable string // const name (default: DATASETS)
	Global   string // object the const is assigned to (default: window)
}

// DefaultScriptOptions returns the names the catalog page expects.
func DefaultScriptOptions() ScriptOptions {
	return ScriptOptions{Variable: "DATASETS", Global: "window"}
}

// Validate checks that both names are plain JavaScript identifiers.
func (o ScriptOptions) Validate() error {
	if !isIdentifier(o.Variable) {
		return fmt.Errorf("%w: variable %q", ErrInvalidIdentifier, o.Variable)
	}
	if !isIdentifier(o.Global) {
		return fmt.Errorf("%w: global %q", ErrInvalidIdentifier, o.Global)
	}
	return nil
}

// isIdentifier accepts ASCII identifiers that are not reserved words.
// Unicode identifiers are valid JavaScript but not needed here.
func isIdentifier(s string) bool {
	if s == "" || reservedWords[s] {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

var reservedWords = func() map[string]bool {
	words := strings.Fields(`break case catch class const continue debugger default delete do
		else enum export extends false finally for function if import in instanceof new null
		return super switch this throw true try typeof var void while with yield let static
		implements interface package private protected public await`)
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()
