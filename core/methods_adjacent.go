// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries.

package core

import "sort"

// NeighborIDs returns the neighbors of id, sorted lexicographically.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d = deg(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// DegreeSequence returns deg(v) for every vertex in Vertices() order.
// Complexity: O(V log V).
func (g *Graph) DegreeSequence() []int {
	ids := g.Vertices()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = len(g.adjacency[id])
	}

	return out
}

// MaxDegree returns the largest vertex degree, or 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := 0
	for _, nbrs := range g.adjacency {
		if len(nbrs) > best {
			best = len(nbrs)
		}
	}

	return best
}
