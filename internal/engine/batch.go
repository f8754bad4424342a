package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/carbonlens/internal/logging"
)

// ProgressFunc is called after each request finishes with the number done
// so far and the total. It may be called from multiple goroutines.
type ProgressFunc func(done, total int)

// AssessBatch runs every request with at most concurrency assessments in
// flight. Results keep the order of reqs. A failed request records its
// error and does not stop the others; a cancelled ctx marks the remaining
// requests with ctx.Err().
func (e *Engine) AssessBatch(
	ctx context.Context,
	reqs []*Request,
	concurrency int,
	progress ProgressFunc,
) []BatchResult {
	log := logging.FromContext(ctx)
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]BatchResult, len(reqs))
	var done atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, req := range reqs {
		name := ""
		if req != nil {
			name = req.Name
		}
		results[i].Name = name

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i].Err = err
			} else {
				a, err := e.Assess(gCtx, req)
				results[i].Assessment = a
				results[i].Err = err
			}
			if results[i].Err != nil {
				results[i].Error = results[i].Err.Error()
				log.Warn().Ctx(ctx).Err(results[i].Err).
					Str("component", "engine").
					Str("name", name).
					Msg("batch assessment failed")
			}
			if progress != nil {
				progress(int(done.Add(1)), len(reqs))
			}
			// Always nil: one failed profile must not cancel the rest.
			return nil
		})
	}

	_ = g.Wait()

	log.Debug().Ctx(ctx).
		Str("component", "engine").
		Str("operation", "assess_batch").
		Int("requests", len(reqs)).
		Int("concurrency", concurrency).
		Msg("batch complete")

	return results
}

// BatchFailures counts results that carry an error.
func BatchFailures(results []BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
