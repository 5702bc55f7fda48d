package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// fixedNow is the clock used by CLI tests.
var fixedNow = time.Date(2026, time.March, 7, 9, 30, 0, 0, time.UTC)

// testEnv returns an Environment writing to buffers with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

var catalogHeader = []any{"id", "name", "description", "url", "categories", "source", "region", "type", "yearStart", "yearEnd", "tags", "invisibleTags", "additionalInfo"}

// writeCatalog saves a two-record catalog workbook to dir/name.
// A non-nil header replaces the default one.
func writeCatalog(t *testing.T, dir, name string, header []any) string {
	t.Helper()

	if header == nil {
		header = catalogHeader
	}
	rows := [][]any{
		header,
		{"1", "Census", "Counts", "https://example.org", "Demography; Health", "Stats", "Europe", "Census", "1990", "2020", "people", "", "**Yearly**"},
		{"2", "Trade", "", "", "", "", "", "", "", "", "", "", ""},
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			t.Fatal(err)
		}
		values := row
		if err := f.SetSheetRow("Sheet1", cell, &values); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}
