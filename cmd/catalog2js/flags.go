package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds script and export flags.
type outputFlags struct {
	path     string
	csv      string
	variable string
	global   string
}

// markdownFlags holds additionalInfo rendering flags.
type markdownFlags struct {
	highlight      bool
	highlightStyle string
	linksNewTab    bool
	noRawHTML      bool
	baseURL        string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	sheet    string
	workers  int
	output   outputFlags
	markdown markdownFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "generated script path (default: data.js)")
	fs.StringVar(&f.csv, "csv", "", "also export CSV (\"auto\" = datasets-<date>.csv)")
	fs.StringVar(&f.variable, "var", "", "const name in the script (default: DATASETS)")
	fs.StringVar(&f.global, "global", "", "global object the const is bound to (default: window)")
}

// addMarkdownFlags adds markdown rendering flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.BoolVar(&f.highlight, "highlight", false, "syntax-highlight fenced code")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for inline colors (implies --highlight)")
	fs.BoolVar(&f.linksNewTab, "links-new-tab", false, "open external links in a new tab")
	fs.BoolVar(&f.noRawHTML, "no-raw-html", false, "drop raw HTML from markdown")
	fs.StringVar(&f.baseURL, "base-url", "", "resolve relative links and images against this URL")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{}

	fs.StringVarP(&f.sheet, "sheet", "s", "", "worksheet name (default: first sheet)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "rows rendered in parallel (0 = auto)")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addMarkdownFlags(fs, &f.markdown)

	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// schemaFlags holds flags for the schema command.
type schemaFlags struct {
	output string
}

// parseSchemaFlags parses schema command flags.
func parseSchemaFlags(args []string, usage io.Writer) (*schemaFlags, []string, error) {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &schemaFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "write the schema to a file instead of stdout")
	fs.Usage = func() { printSchemaUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, usage io.Writer) (*commonFlags, []string, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &commonFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.Usage = func() { printConfigUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
