// SPDX-License-Identifier: MIT
// Package ullman - search engine (depth-first backtracking over table rows).
//
// Rationale (succinct):
//  1. Both graphs are prefetched into dense boolean buffers so the hot loops
//     never go through the Graph interface; the collaborator contract is
//     validated during prefetch, before any search starts.
//  2. Search: row r (pattern vertex r) tries every open column of F[r] in
//     ascending order. Each try clones F, commits (r, j), propagates, and
//     skips the branch if some row became empty. Row 0 is not special.
//  3. The first complete, valid table ends the search (existence only).
//  4. Cancellation: the context is polled every cancelEvery expansions and a
//     shared stop flag (parallel mode) at every expansion.
//
// Complexity:
//   - Worst case exponential in n. Per try: O(n·m) clone + O(n·m) propagation.
//   - Memory: O(n·m) per live recursion level, O(n²·m) in total.

package ullman

import (
	"context"
	"fmt"
	"sync/atomic"
)

// cancelEvery is the sparse context-poll period (power of two).
const cancelEvery = 256

// engine holds read-only problem data plus per-walker mutable counters.
// Parallel workers get shallow copies sharing ap/at/degP/degT.
type engine struct {
	// Problem data (read-only after prefetch).
	n, m int
	ap   []bool // pattern adjacency, ap[i*n+j]
	at   []bool // target adjacency, at[i*m+j]
	degP []int
	degT []int
	mode Mode

	// Control.
	ctx      context.Context
	stop     *atomic.Bool // nil in sequential mode
	onAssign func(row, col int)

	// Per-walker state.
	steps int
	stats Stats
}

// dense is a prefetched, validated view of one Graph.
type dense struct {
	n   int
	adj []bool
	deg []int
}

// prefetch copies g into a dense buffer and enforces the collaborator contract:
// non-negative count, successful lookups, zero diagonal, symmetry, and
// degree(i) equal to the number of neighbors in row i.
func prefetch(g Graph, role string) (dense, error) {
	n := g.VertexCount()
	if n < 0 {
		return dense{}, fmt.Errorf("%w: %s vertex count %d", ErrInvalidInput, role, n)
	}
	d := dense{n: n, adj: make([]bool, n*n), deg: make([]int, n)}

	var (
		i, j int
		ok   bool
		deg  int
		sum  int
		err  error
	)
	for i = 0; i < n; i++ {
		deg, err = g.Degree(i)
		if err != nil {
			return dense{}, fmt.Errorf("%w: %s Degree(%d): %v", ErrInvalidInput, role, i, err)
		}
		sum = 0
		for j = 0; j < n; j++ {
			ok, err = g.Adjacent(i, j)
			if err != nil {
				return dense{}, fmt.Errorf("%w: %s Adjacent(%d,%d): %v", ErrInvalidInput, role, i, j, err)
			}
			if ok {
				if i == j {
					return dense{}, fmt.Errorf("%w: %s self-loop at %d", ErrInvalidInput, role, i)
				}
				d.adj[i*n+j] = true
				sum++
			}
		}
		if deg != sum {
			return dense{}, fmt.Errorf("%w: %s degree(%d)=%d but row has %d neighbors", ErrInvalidInput, role, i, deg, sum)
		}
		d.deg[i] = deg
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d.adj[i*n+j] != d.adj[j*n+i] {
				return dense{}, fmt.Errorf("%w: %s adjacency asymmetric at (%d,%d)", ErrInvalidInput, role, i, j)
			}
		}
	}

	return d, nil
}

// newEngine wires prefetched pattern/target data with the resolved options.
func newEngine(p, t dense, o Options) *engine {
	return &engine{
		n:        p.n,
		m:        t.n,
		ap:       p.adj,
		at:       t.adj,
		degP:     p.deg,
		degT:     t.deg,
		mode:     o.Mode,
		ctx:      o.Ctx,
		onAssign: o.OnAssign,
	}
}

// fork returns a worker sharing problem data with fresh counters.
// Only read-only fields of e are touched, so sibling workers may fork
// while others merge their statistics.
func (e *engine) fork(ctx context.Context, stop *atomic.Bool) *engine {
	return &engine{
		n:        e.n,
		m:        e.m,
		ap:       e.ap,
		at:       e.at,
		degP:     e.degP,
		degT:     e.degT,
		mode:     e.mode,
		ctx:      ctx,
		stop:     stop,
		onAssign: e.onAssign,
	}
}

// interrupted polls the stop flag always and the context sparsely.
func (e *engine) interrupted() error {
	if e.stop != nil && e.stop.Load() {
		return errStopped
	}
	e.steps++
	if e.steps&(cancelEvery-1) != 0 {
		return nil
	}

	return e.ctx.Err()
}

// search explores row onward on table f. f is never mutated here.
func (e *engine) search(f *table, row int) (bool, error) {
	if err := e.interrupted(); err != nil {
		return false, err
	}
	e.stats.Nodes++
	if row > e.stats.MaxDepth {
		e.stats.MaxDepth = row
	}

	// Every pattern vertex is placed: the table must encode an injective mapping.
	if row == e.n {
		return f.valid(), nil
	}

	var (
		col   int
		found bool
		err   error
	)
	for col = 0; col < e.m; col++ {
		if !f.at(row, col) {
			continue
		}
		found, err = e.try(f, row, col)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

// try commits row → col on a private copy of f, propagates, and recurses
// unless propagation left some row without candidates.
func (e *engine) try(f *table, row, col int) (bool, error) {
	next := f.clone()
	next.commit(row, col)
	e.stats.Assignments++
	e.onAssign(row, col)

	e.stats.Cleared += int64(e.propagate(next, row, col))
	if next.hasEmptyRow() {
		e.stats.DeadBranches++
		return false, nil
	}

	return e.search(next, row+1)
}
