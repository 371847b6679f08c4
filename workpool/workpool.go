// Package workpool models the "abstract work dispatcher" of spec.md §5:
// a bounded dispatcher where each submission returns a handle (Future)
// that resolves once the task completes and captures its error for the
// caller to observe later — nothing is retried or logged internally by
// the pool itself.
//
// Every submission runs on its own new goroutine, and a semaphore caps
// how many run at once; there are no long-lived worker goroutines and no
// task queue. RunAll uses golang.org/x/sync/errgroup (bounded via
// SetLimit) and records each task's error itself.
package workpool

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool is a bounded worker pool. The zero value is not usable; construct
// with New.
type Pool struct {
	sem chan struct{}
}

// New creates a Pool that runs at most size tasks concurrently. size <= 0
// means unbounded (limited only by whatever concurrency the caller
// submits).
func New(size int) *Pool {
	p := &Pool{}
	if size > 0 {
		p.sem = make(chan struct{}, size)
	}

	return p
}

// Future is a handle to a submitted task's eventual result.
type Future struct {
	done chan struct{}
	err  error
}

// Wait blocks until the task completes and returns its error, or nil on
// success. Wait may be called more than once; it always returns the same
// result.
func (f *Future) Wait() error {
	<-f.done
	return f.err
}

// Submit runs fn on a pool goroutine and returns immediately with a
// Future that resolves when fn returns. Submit itself never blocks: if
// the pool was constructed with a bound, the task's goroutine waits for
// a free slot before starting fn, and if ctx is done first, fn is not
// run and the Future resolves with ctx.Err().
func (p *Pool) Submit(ctx context.Context, fn func(context.Context) error) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if p.sem != nil {
			select {
			case p.sem <- struct{}{}:
				defer func() { <-p.sem }()
			case <-ctx.Done():
				f.err = ctx.Err()
				return
			}
		}

		f.err = fn(ctx)
	}()

	return f
}

// RunAll submits every fn concurrently (respecting the pool's bound),
// waits for all of them, and returns each task's error at that task's
// index (nil on success). A failing task does not cancel or abort its
// siblings, which is what sweep.SweepParallel* needs to report per-T
// failures.
func (p *Pool) RunAll(ctx context.Context, fns []func(context.Context) error) []error {
	errs := make([]error, len(fns))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	if p.sem != nil {
		eg.SetLimit(cap(p.sem))
	}

	for i, fn := range fns {
		i, fn := i, fn
		eg.Go(func() error {
			err := fn(egCtx)
			mu.Lock()
			errs[i] = err
			mu.Unlock()

			return nil // never abort siblings on a single task's error
		})
	}
	_ = eg.Wait()

	return errs
}
