package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	catalog2js "github.com/alnah/go-catalog2js"
	"github.com/alnah/go-catalog2js/internal/config"
	"github.com/alnah/go-catalog2js/internal/dateutil"
	"github.com/alnah/go-catalog2js/internal/hints"
	"github.com/alnah/go-catalog2js/internal/sheet"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrSamePath           = errors.New("output would overwrite input")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// csvAutoPrefix names CSV exports requested with "auto".
const csvAutoPrefix = "datasets-"

// runConvert loads, converts and writes one catalog.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(positionalArgs))
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, positionalArgs, cfg)

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidValue) && cfg.Markdown.HighlightStyle != "" {
			return fmt.Errorf("%w%s", err, hints.ForHighlightStyle())
		}
		return err
	}

	scriptOpts := catalog2js.ScriptOptions{Variable: cfg.Output.Variable, Global: cfg.Output.Global}
	if err := scriptOpts.Validate(); err != nil {
		return err
	}

	if err := checkDistinctPaths(cfg.Input.Path, cfg.Output.Path); err != nil {
		return err
	}

	csvPath, err := resolveCSVPath(cfg.Output.CSVPath, cfg.Output.Path, env.Now())
	if err != nil {
		return fmt.Errorf("invalid --csv value: %w", err)
	}
	if csvPath != "" {
		if err := checkDistinctPaths(cfg.Input.Path, csvPath); err != nil {
			return err
		}
	}

	timer := newStageTimer(env, flags.common.verbose)

	table, err := catalog2js.LoadFile(cfg.Input.Path, cfg.Input.Sheet)
	if err != nil {
		return withLoadHint(err, cfg.Input.Path)
	}
	timer.done("load", fmt.Sprintf("%d rows from %s", len(table.Rows), describeSheet(table)))

	conv, err := catalog2js.NewConverter(
		catalog2js.WithRenderOptions(catalog2js.RenderOptions{
			Highlight:      cfg.Markdown.Highlight,
			HighlightStyle: cfg.Markdown.HighlightStyle,
			DisableRawHTML: cfg.Markdown.DisableRawHTML,
		}),
		catalog2js.WithBaseURL(cfg.Markdown.BaseURL),
		catalog2js.WithWorkers(flags.workers),
		linksOption(cfg.Markdown.LinksNewTab),
	)
	if err != nil {
		return err
	}

	datasets, err := conv.Convert(ctx, table)
	if err != nil {
		var mcErr *catalog2js.MissingColumnError
		if errors.As(err, &mcErr) {
			return fmt.Errorf("%w%s", err, hints.ForMissingColumns(mcErr.Available))
		}
		return err
	}
	timer.done("convert", fmt.Sprintf("%d records", len(datasets)))

	if err := catalog2js.WriteScript(cfg.Output.Path, datasets, scriptOpts); err != nil {
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	}
	timer.done("write", cfg.Output.Path)

	if csvPath != "" {
		if err := catalog2js.WriteCSVFile(csvPath, datasets); err != nil {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		timer.done("csv", csvPath)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Generated %s with %d records\n", cfg.Output.Path, len(datasets))
		if csvPath != "" {
			fmt.Fprintf(env.Stdout, "Exported %s\n", csvPath)
		}
	}
	return nil
}

// loadConfig returns the file config named by flag or CATALOG2JS_CONFIG,
// or the defaults, with environment overrides applied.
func loadConfig(flagName string) (*config.Config, error) {
	envCfg := loadEnvConfig()

	name := flagName
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, positionalArgs []string, cfg *config.Config) {
	if len(positionalArgs) > 0 {
		cfg.Input.Path = positionalArgs[0]
	}
	if flags.sheet != "" {
		cfg.Input.Sheet = flags.sheet
	}

	if flags.output.path != "" {
		cfg.Output.Path = flags.output.path
	}
	if flags.output.csv != "" {
		cfg.Output.CSVPath = flags.output.csv
	}
	if flags.output.variable != "" {
		cfg.Output.Variable = flags.output.variable
	}
	if flags.output.global != "" {
		cfg.Output.Global = flags.output.global
	}

	if flags.markdown.highlight {
		cfg.Markdown.Highlight = true
	}
	if flags.markdown.highlightStyle != "" {
		cfg.Markdown.Highlight = true
		cfg.Markdown.HighlightStyle = flags.markdown.highlightStyle
	}
	if flags.markdown.linksNewTab {
		cfg.Markdown.LinksNewTab = true
	}
	if flags.markdown.noRawHTML {
		cfg.Markdown.DisableRawHTML = true
	}
	if flags.markdown.baseURL != "" {
		cfg.Markdown.BaseURL = flags.markdown.baseURL
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > catalog2js.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, catalog2js.MaxWorkers)
	}
	return nil
}

// linksOption returns WithLinksNewTab when enabled, or a no-op.
func linksOption(enabled bool) catalog2js.Option {
	if enabled {
		return catalog2js.WithLinksNewTab()
	}
	return func(*catalog2js.Converter) {}
}

// resolveCSVPath expands "auto" and "auto:FORMAT" to a dated file name
// next to the script. Other values are returned unchanged.
func resolveCSVPath(value, scriptPath string, now time.Time) (string, error) {
	if value == "" || !dateutil.IsAuto(value) {
		return value, nil
	}
	stamp, err := dateutil.ResolveStamp(value, now)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(scriptPath), csvAutoPrefix+stamp+".csv"), nil
}

// checkDistinctPaths refuses to write over the catalog being read.
func checkDistinctPaths(input, output string) error {
	in, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolving input path: %w", err)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	if in == out {
		return fmt.Errorf("%w: %s", ErrSamePath, output)
	}
	return nil
}

// withLoadHint appends a hint to catalog loading errors.
func withLoadHint(err error, path string) error {
	var snf *sheet.SheetNotFoundError
	var pathErr *fs.PathError
	switch {
	case errors.As(err, &snf):
		return fmt.Errorf("%w%s", err, hints.ForSheetNotFound(snf.Available))
	case errors.Is(err, fs.ErrNotExist) && errors.As(err, &pathErr):
		return fmt.Errorf("%w%s", err, hints.ForInputNotFound(path))
	}
	return err
}

// describeSheet names the loaded sheet for verbose output.
func describeSheet(t *catalog2js.Table) string {
	if t.Name == "" {
		return "CSV"
	}
	return fmt.Sprintf("sheet %q", t.Name)
}

// stageTimer prints the duration of each pipeline stage in verbose mode.
type stageTimer struct {
	env     *Environment
	verbose bool
	last    time.Time
}

func newStageTimer(env *Environment, verbose bool) *stageTimer {
	return &stageTimer{env: env, verbose: verbose, last: env.Now()}
}

// done reports the stage that just finished and restarts the clock.
func (s *stageTimer) done(stage, detail string) {
	now := s.env.Now()
	if s.verbose {
		fmt.Fprintf(s.env.Stderr, "%-8s %8v  %s\n", stage, now.Sub(s.last).Round(time.Millisecond), detail)
	}
	s.last = now
}
