package catalog2js

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alnah/go-catalog2js/internal/fileutil"
)

// filePermissions for generated artifacts: rw-r--r--, the page is served as-is.
const filePermissions = 0o644

// EncodeScript writes datasets as a JavaScript const declaration followed
// by its binding to a global:
//
//	const DATASETS = [...];
//	window.DATASETS = DATASETS;
//
// The array is 2-space indented JSON with non-ASCII text and HTML
// characters written literally. No newline follows the last statement.
func EncodeScript(w io.Writer, datasets []Dataset, opts ScriptOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	datasets = withEmptyLists(datasets)

	var js bytes.Buffer
	enc := json.NewEncoder(&js)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(datasets); err != nil {
		return fmt.Errorf("encoding datasets: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("const " + opts.Variable + " = ")
	// Encode terminates with "\n"; the statement ends right after the array.
	buf.Write(unescapeLineSeparators(bytes.TrimSuffix(js.Bytes(), []byte("\n"))))
	buf.WriteString(";\n")
	buf.WriteString(opts.Global + "." + opts.Variable + " = " + opts.Variable + ";")

	_, err := w.Write(buf.Bytes())
	return err
}

// unescapeLineSeparators writes the \u2028 and \u2029 escapes that
// encoding/json always emits back as literal characters. Other escape
// sequences are copied unchanged, so an escaped backslash followed by
// "u2028" stays as written.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		switch rest := b[i+1:]; {
		case bytes.HasPrefix(rest, []byte("u2028")):
			out = append(out, "\u2028"...)
			i += len(`\u2028`) - 1
		case bytes.HasPrefix(rest, []byte("u2029")):
			out = append(out, "\u2029"...)
			i += len(`\u2029`) - 1
		default:
			out = append(out, b[i], b[i+1])
			i++
		}
	}
	return out
}

// withEmptyLists returns a copy of datasets where nil lists are empty,
// so they encode as [] rather than null.
func withEmptyLists(datasets []Dataset) []Dataset {
	out := make([]Dataset, len(datasets))
	for i, d := range datasets {
		for _, list := range []*[]string{&d.Categories, &d.Region, &d.Tags, &d.InvisibleTags} {
			if *list == nil {
				*list = []string{}
			}
		}
		out[i] = d
	}
	return out
}

// WriteScript encodes datasets and replaces path atomically. On any
// failure the previous file at path, if one exists, is left unchanged.
func WriteScript(path string, datasets []Dataset, opts ScriptOptions) error {
	var buf bytes.Buffer
	if err := EncodeScript(&buf, datasets, opts); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
