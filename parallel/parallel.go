// Package parallel runs independent searches concurrently and gathers their
// results in input order.
//
// Each call of the worker function must own its own search state; the only
// thing shared between goroutines is the result slice, and each goroutine
// writes a distinct index of it.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item with at most workers goroutines in flight and
// returns the results in the order of items. workers <= 0 means GOMAXPROCS.
//
// The first error cancels the context handed to the remaining calls, and Map
// returns that error with a nil result slice.
func Map[T, R any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]R, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, item := range items {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r, err := fn(gCtx, item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Sum is Map followed by adding up the results.
func Sum[T any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (int, error)) (int, error) {
	vals, err := Map(ctx, items, workers, fn)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, v := range vals {
		total += v
	}
	return total, nil
}
