package catalog2js

import (
	"context"
	"fmt"
	"sync"
)

// renderAll renders the additionalInfo cell of every row concurrently.
// Results are indexed by row, so output order matches input order. The
// first error by row index is returned. Cancellation is returned as the
// context's error, not as a rendering failure.
func (c *Converter) renderAll(ctx context.Context, rows []Row) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	concurrency := ResolveWorkers(c.cfg.workers)
	if concurrency > len(rows) {
		concurrency = len(rows)
	}

	results := make([]string, len(rows))
	errs := make([]error, len(rows))
	var wg sync.WaitGroup
	jobs := make(chan int, len(rows))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					continue
				}
				results[idx], errs[idx] = c.Render(ctx, rows[idx]["additionalInfo"])
			}
		}()
	}

	for i := range rows {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (id %q): %w", ErrMarkdownRender, i+1, rows[i]["id"], err)
		}
	}
	return results, nil
}
