package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-catalog2js/internal/fileutil"
	"github.com/alnah/go-catalog2js/internal/pipeline"
	"github.com/alnah/go-catalog2js/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Defaults matching the catalog page's expectations.
const (
	DefaultInputPath  = "datasets.xlsx"
	DefaultOutputPath = "data.js"
	DefaultVariable   = "DATASETS"
	DefaultGlobal     = "window"
)

// Field length limits.
const (
	MaxPathLength           = 4096 // PATH_MAX on Linux
	MaxSheetNameLength      = 31   // Excel limit
	MaxIdentifierLength     = 64   // JavaScript names in the generated script
	MaxHighlightStyleLength = 50   // chroma style names
)

// configDirName is the directory under os.UserConfigDir searched for named configs.
const configDirName = "go-catalog2js"

// Config holds all configuration for catalog conversion.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Markdown MarkdownConfig `yaml:"markdown"`
}

// InputConfig defines the catalog source.
type InputConfig struct {
	Path  string `yaml:"path"`  // .xlsx, .xlsm or .csv (default: datasets.xlsx)
	Sheet string `yaml:"sheet"` // Worksheet name (empty = first sheet)
}

// OutputConfig defines the generated artifacts.
type OutputConfig struct {
	Path     string `yaml:"path"`     // Script file (default: data.js)
	CSVPath  string `yaml:"csvPath"`  // Optional CSV export; "auto" or "auto:FORMAT" = dated name
	Variable string `yaml:"variable"` // const name (default: DATASETS)
	Global   string `yaml:"global"`   // Global object the const is bound to (default: window)
}

// MarkdownConfig defines additionalInfo rendering options.
type MarkdownConfig struct {
	Highlight      bool   `yaml:"highlight"`      // Syntax-highlight fenced code
	HighlightStyle string `yaml:"highlightStyle"` // chroma style; empty = CSS classes
	LinksNewTab    bool   `yaml:"linksNewTab"`    // External links open in a new tab
	DisableRawHTML bool   `yaml:"disableRawHTML"` // Drop raw HTML from markdown
	BaseURL        string `yaml:"baseURL"`        // Resolve relative links and images against this URL
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers that
// build a Config by hand or merge CLI flags into one.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.path", c.Input.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.sheet", c.Input.Sheet, MaxSheetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.csvPath", c.Output.CSVPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.variable", c.Output.Variable, MaxIdentifierLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.global", c.Output.Global, MaxIdentifierLength); err != nil {
		return err
	}
	if err := validateFieldLength("markdown.highlightStyle", c.Markdown.HighlightStyle, MaxHighlightStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("markdown.baseURL", c.Markdown.BaseURL, MaxPathLength); err != nil {
		return err
	}

	if c.Markdown.HighlightStyle != "" {
		if !c.Markdown.Highlight {
			return fmt.Errorf("%w: markdown.highlightStyle requires markdown.highlight", ErrInvalidValue)
		}
		if !pipeline.IsHighlightStyle(c.Markdown.HighlightStyle) {
			return fmt.Errorf("%w: markdown.highlightStyle %q is not a known style", ErrInvalidValue, c.Markdown.HighlightStyle)
		}
	}

	if c.Markdown.BaseURL != "" {
		if _, err := pipeline.ParseBaseURL(c.Markdown.BaseURL); err != nil {
			return fmt.Errorf("%w: markdown.baseURL: %w", ErrInvalidValue, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// datasets.xlsx in, data.js out, plain markdown rendering.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{Path: DefaultInputPath},
		Output: OutputConfig{
			Path:     DefaultOutputPath,
			Variable: DefaultVariable,
			Global:   DefaultGlobal,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML, for `catalog2js config` and documentation.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// SearchPaths returns the locations LoadConfig tries for a config name,
// in order: current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
