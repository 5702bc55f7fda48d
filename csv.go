package catalog2js

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alnah/go-catalog2js/internal/fileutil"
)

// CSVHeader is the header row of the CSV export, matching the catalog
// page's download button.
var CSVHeader = []string{
	"ID", "Name", "Description", "URL", "Categories", "Source",
	"Region", "Type", "Year Start", "Year End", "Tags",
}

// WriteCSV writes datasets as CSV. List fields are joined with "; ".
// invisibleTags and additionalInfo are page-only and not exported.
func WriteCSV(w io.Writer, datasets []Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, d := range datasets {
		record := []string{
			d.ID,
			d.Name,
			d.Description,
			d.URL,
			JoinList(d.Categories),
			d.Source,
			JoinList(d.Region),
			d.Type,
			d.YearStart,
			d.YearEnd,
			JoinList(d.Tags),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV export to path atomically.
func WriteCSVFile(path string, datasets []Dataset) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, datasets); err != nil {
		return fmt.Errorf("encoding CSV: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
