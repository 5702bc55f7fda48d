package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: catalog2js [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, converts datasets.xlsx to data.js.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a catalog workbook to data.js")
	fmt.Fprintln(w, "  schema     Print the JSON Schema of the generated records")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'catalog2js help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: catalog2js convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a catalog workbook to a script-embeddable data.js.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .xlsx, .xlsm or .csv catalog (default: datasets.xlsx)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Generated script (default: data.js)")
	fmt.Fprintln(w, "  -s, --sheet <name>        Worksheet name (default: first sheet)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --csv <path>          Also export CSV: path, \"auto\", or \"auto:FORMAT\"")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, compact, month")
	fmt.Fprintln(w, "  -w, --workers <n>         Rows rendered in parallel (0 = auto, max 8)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Script:")
	fmt.Fprintln(w, "      --var <name>          const name (default: DATASETS)")
	fmt.Fprintln(w, "      --global <name>       Global object (default: window)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --highlight           Syntax-highlight fenced code (CSS classes)")
	fmt.Fprintln(w, "      --highlight-style <s> Inline colors from a chroma style")
	fmt.Fprintln(w, "      --links-new-tab       Open external links in a new tab")
	fmt.Fprintln(w, "      --no-raw-html         Drop raw HTML from additionalInfo")
	fmt.Fprintln(w, "      --base-url <url>      Resolve relative links and images against <url>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CATALOG2JS_CONFIG, CATALOG2JS_INPUT, CATALOG2JS_OUTPUT, CATALOG2JS_SHEET")
}

// printSchemaUsage prints usage for the schema command.
func printSchemaUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: catalog2js schema [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the JSON Schema of the DATASETS array.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       Write to a file instead of stdout")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: catalog2js config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration (defaults, config file, environment) as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "schema":
		printSchemaUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: catalog2js version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: catalog2js help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, args[0])
	}
	return nil
}
