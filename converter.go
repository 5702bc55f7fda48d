package catalog2js

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alnah/go-catalog2js/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Converter turns catalog rows into Datasets.
// Create with NewConverter; a Converter is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	baseURL       *url.URL
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithRenderOptions, WithLinksNewTab).
// Returns error if the highlight style is unknown or the base URL is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.baseURL != "" {
		base, err := pipeline.ParseBaseURL(c.cfg.baseURL)
		if err != nil {
			return nil, err
		}
		c.baseURL = base
	}

	// Create HTML converter if not injected (e.g., by tests)
	if c.htmlConverter == nil {
		gc, err := pipeline.NewGoldmarkConverter(pipeline.RenderOptions{
			Highlight:      c.cfg.render.Highlight,
			HighlightStyle: c.cfg.render.HighlightStyle,
			DisableRawHTML: c.cfg.render.DisableRawHTML,
		})
		if err != nil {
			return nil, fmt.Errorf("initializing markdown renderer: %w", err)
		}
		c.htmlConverter = gc
	}

	return c, nil
}

// Render converts one additionalInfo cell to single-line HTML.
// Empty input renders to "".
func (c *Converter) Render(ctx context.Context, markdown string) (string, error) {
	md := c.preprocessor.PreprocessMarkdown(ctx, markdown)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, md)
	if err != nil {
		return "", err
	}

	htmlContent, err = pipeline.ResolveRelativeURLs(htmlContent, c.baseURL)
	if err != nil {
		return "", err
	}

	if c.cfg.linksNewTab {
		htmlContent, err = pipeline.OpenLinksInNewTab(htmlContent)
		if err != nil {
			return "", err
		}
	}

	return pipeline.FlattenHTML(htmlContent), nil
}

// Convert checks the table's columns, then renders and projects every row.
// Row order is preserved. Any failure aborts the whole conversion, so a
// caller never writes a partial catalog.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, table *Table) (datasets []Dataset, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if table == nil {
		return nil, fmt.Errorf("%w: nil table", ErrReadInput)
	}

	if err := CheckColumns(table.Columns); err != nil {
		return nil, err
	}

	rendered, err := c.renderAll(ctx, table.Rows)
	if err != nil {
		return nil, err
	}

	datasets = make([]Dataset, len(table.Rows))
	for i, row := range table.Rows {
		datasets[i] = Project(row, rendered[i])
	}
	return datasets, nil
}
