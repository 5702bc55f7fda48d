package sheet

// Notes:
// - Workbooks are built in memory with excelize so tests need no fixtures.
// - ReadFile is exercised through t.TempDir() for the extension dispatch and
//   the not-exist path; reader internals are covered via ReadXLSX/ReadCSV.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows to the named sheets and returns the xlsx bytes.
// The first entry of sheets replaces the default "Sheet1".
func buildWorkbook(t *testing.T, sheets map[string][][]any, order []string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("SetSheetName: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet(%q): %v", name, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			values := row
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.Bytes()
}

// ---------------------------------------------------------------------------
// TestReadXLSX - Worksheet loading
// ---------------------------------------------------------------------------

func TestReadXLSX(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, map[string][][]any{
		"Catalog": {
			{"id", "name", "tags", "yearStart"},
			{"ds-1", "Rainfall", "a;b", 1990},
			{"ds-2", "", "", ""},
			{},
			{"ds-3", "Héllo wörld"},
		},
		"Notes": {
			{"note"},
			{"ignored"},
		},
	}, []string{"Catalog", "Notes"})

	tbl, err := ReadXLSX(bytes.NewReader(data), "")
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}

	if tbl.Name != "Catalog" {
		t.Errorf("Name = %q, want %q", tbl.Name, "Catalog")
	}

	wantCols := []string{"id", "name", "tags", "yearStart"}
	if !reflect.DeepEqual(tbl.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", tbl.Columns, wantCols)
	}

	wantRows := [][]string{
		{"ds-1", "Rainfall", "a;b", "1990"},
		{"ds-2", "", "", ""},
		{"ds-3", "Héllo wörld", "", ""},
	}
	if !reflect.DeepEqual(tbl.Rows, wantRows) {
		t.Errorf("Rows = %q, want %q", tbl.Rows, wantRows)
	}
}

func TestReadXLSX_NamedSheet(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, map[string][][]any{
		"First":  {{"a"}, {"1"}},
		"Second": {{"b"}, {"2"}},
	}, []string{"First", "Second"})

	tests := []struct {
		name      string
		sheet     string
		wantName  string
		wantErr   error
		wantAvail []string
	}{
		{name: "exact name", sheet: "Second", wantName: "Second"},
		{name: "case-insensitive", sheet: "second", wantName: "Second"},
		{name: "unknown sheet", sheet: "Third", wantErr: ErrSheetNotFound, wantAvail: []string{"First", "Second"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tbl, err := ReadXLSX(bytes.NewReader(data), tt.sheet)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				var nf *SheetNotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("error type = %T, want *SheetNotFoundError", err)
				}
				if !reflect.DeepEqual(nf.Available, tt.wantAvail) {
					t.Errorf("Available = %v, want %v", nf.Available, tt.wantAvail)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tbl.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tbl.Name, tt.wantName)
			}
		})
	}
}

func TestReadXLSX_EmptySheet(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, map[string][][]any{"Empty": nil}, []string{"Empty"})

	_, err := ReadXLSX(bytes.NewReader(data), "")
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("error = %v, want ErrNoHeader", err)
	}
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	t.Parallel()

	_, err := ReadXLSX(strings.NewReader("id,name\n1,x\n"), "")
	if err == nil {
		t.Fatal("expected error for non-xlsx input, got nil")
	}
}

// ---------------------------------------------------------------------------
// TestReadCSV - Comma-separated input
// ---------------------------------------------------------------------------

func TestReadCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantCols []string
		wantRows [][]string
		wantErr  error
	}{
		{
			name:     "basic",
			input:    "id,name\n1,One\n2,Two\n",
			wantCols: []string{"id", "name"},
			wantRows: [][]string{{"1", "One"}, {"2", "Two"}},
		},
		{
			name:     "BOM stripped",
			input:    "\xef\xbb\xbfid,name\n1,One\n",
			wantCols: []string{"id", "name"},
			wantRows: [][]string{{"1", "One"}},
		},
		{
			name:     "short rows padded",
			input:    "id,name,tags\n1\n",
			wantCols: []string{"id", "name", "tags"},
			wantRows: [][]string{{"1", "", ""}},
		},
		{
			name:     "quoted newline kept",
			input:    "id,info\n1,\"# Hi\n\nText\"\n",
			wantCols: []string{"id", "info"},
			wantRows: [][]string{{"1", "# Hi\n\nText"}},
		},
		{
			name:     "blank rows skipped",
			input:    "id,name\n,\n1,One\n",
			wantCols: []string{"id", "name"},
			wantRows: [][]string{{"1", "One"}},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrNoHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tbl, err := ReadCSV(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(tbl.Columns, tt.wantCols) {
				t.Errorf("Columns = %q, want %q", tbl.Columns, tt.wantCols)
			}
			if !reflect.DeepEqual(tbl.Rows, tt.wantRows) {
				t.Errorf("Rows = %q, want %q", tbl.Rows, tt.wantRows)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReadFile - Extension dispatch
// ---------------------------------------------------------------------------

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	csvPath := filepath.Join(dir, "datasets.csv")
	if err := os.WriteFile(csvPath, []byte("id\n1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	xlsxPath := filepath.Join(dir, "datasets.xlsx")
	data := buildWorkbook(t, map[string][][]any{"S": {{"id"}, {"1"}}}, []string{"S"})
	if err := os.WriteFile(xlsxPath, data, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("csv", func(t *testing.T) {
		t.Parallel()
		tbl, err := ReadFile(csvPath, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tbl.Len() != 1 {
			t.Errorf("Len() = %d, want 1", tbl.Len())
		}
	})

	t.Run("xlsx", func(t *testing.T) {
		t.Parallel()
		tbl, err := ReadFile(xlsxPath, Options{Sheet: "S"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tbl.Len() != 1 {
			t.Errorf("Len() = %d, want 1", tbl.Len())
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := ReadFile(filepath.Join(dir, "datasets.ods"), Options{})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := ReadFile(filepath.Join(dir, "missing.xlsx"), Options{})
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestTable_Record - Row to map conversion
// ---------------------------------------------------------------------------

func TestTable_Record(t *testing.T) {
	t.Parallel()

	tbl := &Table{
		Columns: []string{"id", "name", "id"},
		Rows:    [][]string{{"first", "n", "second"}},
	}

	rec := tbl.Record(0)
	if rec["id"] != "first" {
		t.Errorf("rec[id] = %q, want %q (first column wins)", rec["id"], "first")
	}
	if rec["name"] != "n" {
		t.Errorf("rec[name] = %q, want %q", rec["name"], "n")
	}
	if len(rec) != 2 {
		t.Errorf("len(rec) = %d, want 2", len(rec))
	}
}
