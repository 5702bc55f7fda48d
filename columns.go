package catalog2js

import (
	"fmt"
	"strings"
)

// RequiredColumns are the source columns every catalog must have, in the
// field order of Dataset.
var RequiredColumns = []string{
	"id",
	"name",
	"description",
	"url",
	"categories",
	"source",
	"region",
	"type",
	"yearStart",
	"yearEnd",
	"tags",
	"invisibleTags",
	"additionalInfo",
}

// MissingColumnError lists every required column absent from a sheet.
type MissingColumnError struct {
	Missing   []string // In RequiredColumns order
	Available []string // Header cells that were found
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingColumn, strings.Join(e.Missing, ", "))
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// CheckColumns returns a *MissingColumnError if any required column is
// absent from columns. Extra columns are ignored; names are case-sensitive.
func CheckColumns(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	var missing []string
	for _, name := range RequiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Missing: missing, Available: columns}
	}
	return nil
}

// Project builds a Dataset from a row whose additionalInfo has already
// been rendered. List columns are split here.
func Project(row Row, additionalInfo string) Dataset {
	return Dataset{
		ID:             row["id"],
		Name:           row["name"],
		Description:    row["description"],
		URL:            row["url"],
		Categories:     SplitList(row["categories"]),
		Source:         row["source"],
		Region:         SplitList(row["region"]),
		Type:           row["type"],
		YearStart:      row["yearStart"],
		YearEnd:        row["yearEnd"],
		Tags:           SplitList(row["tags"]),
		InvisibleTags:  SplitList(row["invisibleTags"]),
		AdditionalInfo: additionalInfo,
	}
}
