package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads one worksheet from an xlsx workbook.
// An empty name selects the first sheet in workbook order.
func ReadXLSX(r io.Reader, name string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	target, err := selectSheet(f.GetSheetList(), name)
	if err != nil {
		return nil, err
	}

	// GetRows returns displayed (formatted) values and omits trailing
	// empty cells, which newTable pads back to the header width.
	grid, err := f.GetRows(target)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", target, err)
	}

	return newTable(target, grid)
}

// selectSheet resolves the requested sheet name against the workbook.
// Excel treats sheet names case-insensitively, so matching does too.
func selectSheet(sheets []string, name string) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if strings.EqualFold(s, name) {
			return s, nil
		}
	}
	return "", &SheetNotFoundError{Name: name, Available: sheets}
}

// SheetNotFoundError reports a missing worksheet and the ones that exist.
type SheetNotFoundError struct {
	Name      string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrSheetNotFound, e.Name)
}

// Unwrap lets errors.Is match ErrSheetNotFound.
func (e *SheetNotFoundError) Unwrap() error {
	return ErrSheetNotFound
}
