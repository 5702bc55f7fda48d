// Package catalog2js converts a spreadsheet dataset catalog into a
// script-embeddable data.js file.
//
// # Quick Start
//
// Load the catalog, convert its rows, and write the script:
//
//	table, err := catalog2js.LoadFile("datasets.xlsx", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv, err := catalog2js.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	datasets, err := conv.Convert(ctx, table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = catalog2js.WriteScript("data.js", datasets, catalog2js.DefaultScriptOptions())
//
// # Conversion Pipeline
//
// Each run is a single pass over the sheet:
//
//  1. Column check: every one of the 13 schema columns must be present
//  2. List splitting: categories, region, tags and invisibleTags on ";"
//  3. Markdown rendering of additionalInfo via Goldmark, newlines removed
//  4. Projection to the fixed field order of Dataset
//  5. Serialization as a const declaration bound to a global
//
// The output looks like:
//
//	const DATASETS = [
//	  {
//	    "id": "1",
//	    ...
//	  }
//	];
//	window.DATASETS = DATASETS;
//
// # Configuration
//
// Use functional options to customize rendering:
//
//	conv, err := catalog2js.NewConverter(
//	    catalog2js.WithRenderOptions(catalog2js.RenderOptions{Highlight: true}),
//	    catalog2js.WithLinksNewTab(),
//	    catalog2js.WithBaseURL("https://data.example.org/catalog/"),
//	    catalog2js.WithWorkers(4),
//	)
//
// ScriptOptions changes the declared variable and the global it is bound to.
// WriteCSV and Schema produce the companion CSV export and JSON Schema.
package catalog2js
