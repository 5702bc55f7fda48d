package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-catalog2js/internal/config"
)

// envPrefix marks variables read by catalog2js.
const envPrefix = "CATALOG2JS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // CATALOG2JS_CONFIG: config name or path
	Input      string // CATALOG2JS_INPUT: catalog workbook
	Output     string // CATALOG2JS_OUTPUT: generated script
	Sheet      string // CATALOG2JS_SHEET: worksheet name
}

// knownEnvVars lists valid CATALOG2JS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CATALOG2JS_CONFIG": true,
	"CATALOG2JS_INPUT":  true,
	"CATALOG2JS_OUTPUT": true,
	"CATALOG2JS_SHEET":  true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("CATALOG2JS_CONFIG"),
		Input:      os.Getenv("CATALOG2JS_INPUT"),
		Output:     os.Getenv("CATALOG2JS_OUTPUT"),
		Sheet:      os.Getenv("CATALOG2JS_SHEET"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized CATALOG2JS_* variables.
// Helps catch typos like CATALOG2JS_OUPUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; flags are applied afterwards
// via mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input.Path = env.Input
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.Sheet != "" {
		cfg.Input.Sheet = env.Sheet
	}
}
