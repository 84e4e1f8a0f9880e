// Package fanout spreads independent units of work over a bounded set of
// goroutines and gathers their outputs in input order.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Map calls fn for every item using at most workers goroutines and returns
// the outputs in the order of items. A workers value below 1 is treated as 1.
//
// Map fails fast: the first error cancels the context handed to calls still
// running and stops new items from being started. Map then returns no
// outputs and the error of the lowest-indexed item that failed on its own,
// so the reported error does not depend on goroutine scheduling. If the
// parent ctx is cancelled before the work completes, Map returns ctx.Err().
//
// If items is empty, Map returns an empty non-nil slice without calling fn.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return []R{}, nil
	}
	workers = max(1, min(workers, len(items)))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([]R, len(items))
	errs := make([]error, len(items))
	next := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				v, err := fn(runCtx, items[i])
				if err != nil {
					errs[i] = err
					cancel()
					continue
				}
				out[i] = v
			}
		}()
	}

feed:
	for i := range items {
		if runCtx.Err() != nil {
			break
		}
		select {
		case next <- i:
		case <-runCtx.Done():
			break feed
		}
	}
	close(next)
	wg.Wait()

	if err := firstCause(errs); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// firstCause returns the lowest-indexed error that was not produced by the
// cancellation Map itself triggers.
func firstCause(errs []error) error {
	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}
