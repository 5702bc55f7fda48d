// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-catalog2js/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForInputNotFound returns hints for a missing catalog workbook.
// In CI or a container the working directory is often not the repo root,
// so the hint points at the mount rather than the default name.
func ForInputNotFound(path string) string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if inCI || IsInContainer() {
		hints = append(hints, "check the catalog is mounted in the working directory")
	}
	if os.Getenv("CATALOG2JS_INPUT") == "" {
		hints = append(hints, "pass the workbook path or set CATALOG2JS_INPUT")
	}
	if path != "" && !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		hints = append(hints, "supported inputs: .xlsx, .xlsm, .csv")
	}

	return formatHints(hints)
}

// ForMissingColumns lists the header cells that were found, so a renamed
// or misspelled column is easy to spot.
func ForMissingColumns(available []string) string {
	if len(available) == 0 {
		return format("the sheet has no header row")
	}
	return format("found columns: " + strings.Join(available, ", "))
}

// ForSheetNotFound returns hints for an unknown worksheet name.
func ForSheetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available sheets: " + strings.Join(available, ", "))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-catalog2js/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-catalog2js") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForHighlightStyle returns hints for an unknown chroma style.
func ForHighlightStyle() string {
	return format("omit --highlight-style to emit CSS classes, or use a chroma style such as github or monokai")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
