// SPDX-License-Identifier: MIT
// Package: subiso/bfs
//
// bfs.go - breadth-first walk over core.Graph.
//
// Neighbors are expanded in core.Graph.NeighborIDs order (lexicographic), so
// the visit order is deterministic.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/subiso/core"
)

// queueItem pairs a vertex with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable walk state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Walk runs breadth-first search on g from start.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound, the
// context error, or a wrapped OnVisit error.
// Complexity: O(V + E).
func Walk(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool),
		res:     &Result{Depth: make(map[string]int)},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return nil
}
