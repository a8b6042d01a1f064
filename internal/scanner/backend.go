package scanner

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// runner issues up to n tasks with at most limit running at once. admit is
// called before every task; the first admit error stops issuing. A runner
// always waits for started tasks before returning the admit error.
type runner func(ctx context.Context, n, limit int, admit func(context.Context) error, task func(context.Context)) error

func runnerFor(b Backend) (runner, bool) {
	switch b {
	case BackendWorkers:
		return runWorkers, true
	case BackendSemaphore:
		return runSemaphore, true
	case BackendErrgroup:
		return runErrgroup, true
	default:
		return nil, false
	}
}

func runWorkers(ctx context.Context, n, limit int, admit func(context.Context) error, task func(context.Context)) error {
	jobs := make(chan struct{})

	var wg sync.WaitGroup
	for range min(n, limit) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				task(ctx)
			}
		}()
	}

	var err error
	for range n {
		if err = admit(ctx); err != nil {
			break
		}
		select {
		case jobs <- struct{}{}:
		case <-ctx.Done():
			err = ctx.Err()
		}
		if err != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	return err
}

func runSemaphore(ctx context.Context, n, limit int, admit func(context.Context) error, task func(context.Context)) error {
	sem := semaphore.NewWeighted(int64(limit))

	var err error
	for range n {
		if err = sem.Acquire(ctx, 1); err != nil {
			break
		}
		if err = admit(ctx); err != nil {
			sem.Release(1)
			break
		}
		go func() {
			defer sem.Release(1)
			task(ctx)
		}()
	}

	// holding the full weight means every started task has released its slot
	_ = sem.Acquire(context.Background(), int64(limit))

	return err
}

func runErrgroup(ctx context.Context, n, limit int, admit func(context.Context) error, task func(context.Context)) error {
	var g errgroup.Group
	g.SetLimit(limit)

	var err error
	for range n {
		if err = admit(ctx); err != nil {
			break
		}
		g.Go(func() error {
			task(ctx)

			return nil
		})
	}
	_ = g.Wait()

	return err
}
