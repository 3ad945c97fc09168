// Package concurrency has small fan-out helpers shared by the services.
package concurrency

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type WorkerFn func(ctx context.Context) error

// Run executes fns concurrently, at most limit at a time (no limit when
// limit <= 0). It returns the first error; the context passed to the
// remaining workers is cancelled once any of them fails.
func Run(ctx context.Context, limit int, fns ...WorkerFn) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, fn := range fns {
		fn := fn
		g.Go(func() error { return fn(ctx) })
	}
	return g.Wait()
}
