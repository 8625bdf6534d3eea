// SPDX-License-Identifier: MIT
// Package: ullman
//
// parallel.go - optional fan-out of the row-0 candidates over worker goroutines.
//
// Each worker owns its tables; workers share only the read-only adjacency
// buffers, a stop flag and a cancellable context. The first worker that
// completes a valid table sets the flag and cancels its siblings.

package ullman

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// searchParallel runs the same search as search(f, 0) with up to workers
// concurrent top-level branches. Statistics of all workers are merged into e
// once every worker has returned.
func (e *engine) searchParallel(f *table, workers int) (bool, error) {
	// Nothing to fan out: no rows, or a single candidate.
	if e.n == 0 {
		return e.search(f, 0)
	}
	cands := f.candidates(0)
	if len(cands) < 2 {
		return e.search(f, 0)
	}
	e.stats.Nodes++ // the shared root expansion

	ctx, cancel := context.WithCancel(e.ctx)
	defer cancel()

	var (
		found atomic.Bool
		mu    sync.Mutex
		total Stats // merged worker counters, guarded by mu
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, col := range cands {
		if found.Load() {
			break
		}
		g.Go(func() error {
			w := e.fork(gctx, &found)
			ok, err := w.try(f, 0, col)

			mu.Lock()
			total.add(w.stats)
			mu.Unlock()

			if errors.Is(err, errStopped) {
				return nil
			}
			if err != nil {
				return err
			}
			if ok {
				found.Store(true)
				cancel()
			}

			return nil
		})
	}
	err := g.Wait()
	e.stats.add(total)

	// A success wins over sibling cancellations it caused.
	if found.Load() {
		return true, nil
	}
	if err != nil {
		if perr := e.ctx.Err(); perr != nil {
			return false, perr
		}

		return false, err
	}

	return false, nil
}
