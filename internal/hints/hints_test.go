package hints

// Notes:
// - ForInputNotFound tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"strings"
	"testing"
)

func clearCI(t *testing.T) {
	t.Helper()
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")
}

func TestForInputNotFound_InCI(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	clearCI(t)
	t.Setenv("CI", "true")
	t.Setenv("CATALOG2JS_INPUT", "")

	hint := ForInputNotFound("datasets.xlsx")

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "mounted") {
		t.Error("expected mount suggestion in CI")
	}
	if !strings.Contains(hint, "CATALOG2JS_INPUT") {
		t.Error("expected CATALOG2JS_INPUT suggestion")
	}
}

func TestForInputNotFound_InDocker(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	clearCI(t)
	t.Setenv("CATALOG2JS_INPUT", "")

	hint := ForInputNotFound("datasets.xlsx")

	if !strings.Contains(hint, "mounted") {
		t.Error("expected mount suggestion in Docker")
	}
}

func TestForInputNotFound_EnvAlreadySet(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	clearCI(t)
	t.Setenv("CATALOG2JS_INPUT", "catalog.xlsx")

	hint := ForInputNotFound("catalog.xlsx")

	if hint != "" {
		t.Errorf("expected empty hint when input is configured, got %q", hint)
	}
}

func TestForInputNotFound_UnusualExtension(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	clearCI(t)
	t.Setenv("CATALOG2JS_INPUT", "x")

	hint := ForInputNotFound("datasets.ods")

	if !strings.Contains(hint, ".xlsx, .xlsm, .csv") {
		t.Errorf("expected supported inputs, got %q", hint)
	}
}

func TestForMissingColumns(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		contains  string
	}{
		{
			name:      "no header",
			available: nil,
			contains:  "no header row",
		},
		{
			name:      "with columns",
			available: []string{"id", "title", "url"},
			contains:  "found columns: id, title, url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForMissingColumns(tt.available)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForSheetNotFound(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		wantEmpty bool
		contains  string
	}{
		{
			name:      "empty available",
			available: []string{},
			wantEmpty: true,
		},
		{
			name:      "with sheets",
			available: []string{"Datasets", "Archive"},
			contains:  "Datasets, Archive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForSheetNotFound(tt.available)

			if tt.wantEmpty && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
			if !tt.wantEmpty && !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with paths",
			paths:    []string{"site.yaml", "/home/u/.config/go-catalog2js/site.yaml"},
			contains: "create /home/u/.config/go-catalog2js/site.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestFormat_Consistency(t *testing.T) {
	hints := []string{
		ForOutputDirectory(),
		ForHighlightStyle(),
		ForMissingColumns([]string{"id"}),
		ForSheetNotFound([]string{"Sheet1"}),
		ForConfigNotFound(nil),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
