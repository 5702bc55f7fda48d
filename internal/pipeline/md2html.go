package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// ErrUnknownHighlightStyle indicates a chroma style name that is not registered.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// RenderOptions selects optional rendering features.
type RenderOptions struct {
	// Highlight enables syntax highlighting of fenced code blocks.
	Highlight bool
	// HighlightStyle is a chroma style name. Empty emits CSS classes
	// instead of inline styles, leaving colors to the page stylesheet.
	HighlightStyle string
	// DisableRawHTML replaces raw HTML in the markdown with comments.
	DisableRawHTML bool
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter configured for catalog text:
// tables, definition lists and footnotes, XHTML void tags, and CommonMark
// list numbering (an ordered list keeps its first number, a marker change
// starts a new list).
func NewGoldmarkConverter(opts RenderOptions) (*GoldmarkConverter, error) {
	exts := []goldmark.Extender{
		extension.Table,
		extension.DefinitionList,
		extension.Footnote,
	}

	if opts.Highlight {
		hl, err := newHighlighter(opts.HighlightStyle)
		if err != nil {
			return nil, err
		}
		exts = append(exts, hl)
	}

	rendererOpts := []renderer.Option{
		html.WithXHTML(), // <hr />, <br />
	}
	if !opts.DisableRawHTML {
		// Inline HTML in catalog cells is passed to the page as written.
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAttribute(), // {#id .class} on headings
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md}, nil
}

// newHighlighter builds the fenced-code highlighting extension.
func newHighlighter(style string) (goldmark.Extender, error) {
	if style == "" {
		return highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		), nil
	}
	if !IsHighlightStyle(style) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, style)
	}
	return highlighting.NewHighlighting(
		highlighting.WithStyle(strings.ToLower(style)),
	), nil
}

// IsHighlightStyle reports whether name is a registered chroma style.
func IsHighlightStyle(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if content == "" {
		return "", nil
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// FlattenHTML removes every newline character so the fragment fits on one
// line inside the generated script. This is not JSON escaping: text that
// spanned lines is joined without a separator.
func FlattenHTML(content string) string {
	return strings.ReplaceAll(content, "\n", "")
}
