package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	catalog2js "github.com/alnah/go-catalog2js"
	"github.com/alnah/go-catalog2js/internal/config"
	"github.com/alnah/go-catalog2js/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommand names.
var commands = map[string]bool{
	"convert": true,
	"schema":  true,
	"config":  true,
	"version": true,
	"help":    true,
}

func main() {
	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command and maps its error to an exit code.
// Errors are printed once, here.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	warnUnknownEnvVars(env.Stderr)

	err := run(ctx, args[1:], env)
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
	}
	return exitCodeFor(err)
}

// run selects the command. With no command, or when the first argument
// is a flag or a catalog file, it converts.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 || !isCommand(args[0]) {
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") && !looksLikeCatalog(args[0]) {
			printUsage(env.Stderr)
			return fmt.Errorf("%w: unknown command: %s", ErrUsage, args[0])
		}
		return convertCommand(ctx, args, env)
	}

	switch args[0] {
	case "convert":
		return convertCommand(ctx, args[1:], env)
	case "schema":
		return schemaCommand(args[1:], env)
	case "config":
		return configCommand(args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-catalog2js %s\n", Version)
		return nil
	default: // help
		return runHelp(args[1:], env)
	}
}

// isCommand reports whether arg names a subcommand (case-sensitive).
func isCommand(arg string) bool {
	return commands[arg]
}

// looksLikeCatalog reports whether arg is an input file rather than a command.
func looksLikeCatalog(arg string) bool {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".xlsx", ".xlsm", ".csv":
		return true
	}
	return false
}

// hasVerboseFlag scans raw arguments before flag parsing.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// flagError converts pflag errors to usage errors; -h is not an error.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

func convertCommand(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	return runConvert(ctx, positional, flags, env)
}

func schemaCommand(args []string, env *Environment) error {
	flags, positional, err := parseSchemaFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: schema takes no arguments", ErrUsage)
	}

	data, err := catalog2js.Schema()
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if flags.output == "" {
		_, err = env.Stdout.Write(data)
		return err
	}
	if err := fileutil.WriteFileAtomic(flags.output, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", catalog2js.ErrWriteOutput, err)
	}
	return nil
}

func configCommand(args []string, env *Environment) error {
	flags, positional, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
