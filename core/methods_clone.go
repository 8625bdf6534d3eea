// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, clearing and induced subgraphs.
//
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph: vertices and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id, nbrs := range g.adjacency {
		cp := make(map[string]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		out.adjacency[id] = cp
	}
	out.edgeCount = g.edgeCount

	return out
}

// Clear removes all vertices and edges.
// Complexity: O(1) (old maps are released to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = make(map[string]map[string]struct{})
	g.edgeCount = 0
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id, nbrs := range g.adjacency {
		if !keep[id] {
			continue
		}
		cp := make(map[string]struct{})
		for v := range nbrs {
			if keep[v] {
				cp[v] = struct{}{}
				if id < v {
					out.edgeCount++
				}
			}
		}
		out.adjacency[id] = cp
	}

	return out
}
