// Package fanout runs independent units of work concurrently for the
// application layer. Run maps a function over a slice with bounded
// concurrency; RequireAll runs named tasks and decides success from the
// required ones only.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPanic marks a result whose function panicked. The panic is recovered
// so one misbehaving task cannot take the process down.
var ErrPanic = errors.New("fanout: task panicked")

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines and
// returns results in input order.
//
// A goroutine still waiting for a slot when ctx is canceled records
// ctx.Err() without calling fn. Goroutines that already hold a slot run to
// completion; fn is expected to honor ctx itself. Run blocks until every
// item is accounted for. An empty input yields an empty non-nil slice.
// maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			results[i] = call(ctx, items[i], fn)
		}()
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()

	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
