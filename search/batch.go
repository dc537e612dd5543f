package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunAll runs independent searchers concurrently, at most parallel at a
// time (parallel <= 0 means one goroutine per searcher). Results keep the
// input order.
//
// Each run owns its own frontier, registry and arena, so no state is shared
// between goroutines; the problems themselves must be safe for concurrent
// use if they are shared. The first error cancels the context of the
// remaining runs, which then finish as Cancelled, and is returned wrapped
// with the index of the failing searcher.
func RunAll[S comparable, A any, T any](ctx context.Context, parallel int, searchers ...*Searcher[S, A, T]) ([]*Result[S, A, T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]*Result[S, A, T], len(searchers))

	g, gCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, s := range searchers {
		g.Go(func() error {
			if s == nil {
				return fmt.Errorf("searcher %d: %w", i, ErrNilProblem)
			}
			res, err := s.Run(gCtx)
			if err != nil {
				return fmt.Errorf("searcher %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
