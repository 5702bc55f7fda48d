// Package sheet loads a single worksheet of a catalog file into string cells.
//
// Supported formats are selected by file extension:
//   - .xlsx, .xlsm: Office Open XML workbooks via excelize
//   - .csv: comma-separated text (UTF-8, optional BOM)
//
// The first row is the header. Cells are read as the text the spreadsheet
// displays; blank cells become empty strings and short rows are padded so
// every row has one cell per header column. Rows whose cells are all blank
// are skipped.
package sheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for sheet loading.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrNoHeader          = errors.New("sheet has no header row")
)

// Table is one worksheet held in memory.
type Table struct {
	Name    string     // worksheet name ("" for CSV)
	Columns []string   // header cells, in sheet order
	Rows    [][]string // data rows, len(row) == len(Columns)
}

// Options controls how a file is loaded.
type Options struct {
	// Sheet selects a worksheet by name. Empty means the first sheet.
	// Ignored for CSV input.
	Sheet string
}

// ReadFile loads path, choosing the reader from the file extension.
func ReadFile(path string, opts Options) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isSupported(ext) {
		return nil, fmt.Errorf("%w: %q (supported: .xlsx, .xlsm, .csv)", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if ext == ".csv" {
		return ReadCSV(f)
	}
	return ReadXLSX(f, opts.Sheet)
}

// isSupported reports whether ext names a readable format.
func isSupported(ext string) bool {
	switch ext {
	case ".xlsx", ".xlsm", ".csv":
		return true
	default:
		return false
	}
}

// newTable builds a Table from raw grid rows, the first being the header.
func newTable(name string, grid [][]string) (*Table, error) {
	if len(grid) == 0 || isBlank(grid[0]) {
		return nil, ErrNoHeader
	}

	columns := trimTrailingBlank(grid[0])
	t := &Table{
		Name:    name,
		Columns: columns,
		Rows:    make([][]string, 0, len(grid)-1),
	}

	for _, raw := range grid[1:] {
		if isBlank(raw) {
			continue
		}
		t.Rows = append(t.Rows, pad(raw, len(columns)))
	}

	return t, nil
}

// pad returns row resized to n cells; missing cells are "".
func pad(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)
	return out
}

// isBlank reports whether every cell in row is empty.
func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// trimTrailingBlank drops empty header cells at the end of the row.
// Spreadsheets often report formatted-but-empty trailing columns.
func trimTrailingBlank(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	out := make([]string, end)
	copy(out, row[:end])
	return out
}

// Record returns row i as a map keyed by column name.
// When a header name repeats, the first column wins.
func (t *Table) Record(i int) map[string]string {
	row := t.Rows[i]
	rec := make(map[string]string, len(t.Columns))
	for j, col := range t.Columns {
		if _, dup := rec[col]; dup {
			continue
		}
		rec[col] = row[j]
	}
	return rec
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
