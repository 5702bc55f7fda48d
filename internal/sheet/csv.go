package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// utf8BOM is stripped from the start of CSV input (Excel writes one).
var utf8BOM = []byte("\xef\xbb\xbf")

// ReadCSV loads comma-separated input. Rows may have differing widths.
func ReadCSV(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if peek, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(peek, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var grid [][]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		grid = append(grid, record)
	}

	return newTable("", grid)
}
