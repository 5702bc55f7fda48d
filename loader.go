package catalog2js

import (
	"fmt"
	"io"

	"github.com/alnah/go-catalog2js/internal/sheet"
)

// Loader errors, re-exported from the sheet reader.
var (
	ErrUnsupportedFormat = sheet.ErrUnsupportedFormat
	ErrSheetNotFound     = sheet.ErrSheetNotFound
	ErrNoHeader          = sheet.ErrNoHeader
)

// LoadFile reads one sheet of an .xlsx, .xlsm or .csv catalog.
// An empty sheetName selects the first worksheet; matching is
// case-insensitive. Errors wrap ErrReadInput and keep the underlying
// cause (os.ErrNotExist, ErrSheetNotFound, ...) visible to errors.Is.
func LoadFile(path, sheetName string) (*Table, error) {
	t, err := sheet.ReadFile(path, sheet.Options{Sheet: sheetName})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return fromSheet(t), nil
}

// LoadXLSX reads a workbook from r. See LoadFile for sheetName.
func LoadXLSX(r io.Reader, sheetName string) (*Table, error) {
	t, err := sheet.ReadXLSX(r, sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return fromSheet(t), nil
}

// LoadCSV reads a UTF-8 CSV catalog from r.
func LoadCSV(r io.Reader) (*Table, error) {
	t, err := sheet.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return fromSheet(t), nil
}

// fromSheet keys every row by header name.
func fromSheet(t *sheet.Table) *Table {
	rows := make([]Row, t.Len())
	for i := range rows {
		rows[i] = t.Record(i)
	}
	return &Table{Name: t.Name, Columns: t.Columns, Rows: rows}
}
