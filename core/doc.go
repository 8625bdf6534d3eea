// Package core provides a small, thread-safe, in-memory undirected simple
// graph used as the input surface for subgraph-isomorphism testing.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; AddEdge(u,v) makes both HasEdge(u,v) and HasEdge(v,u) true.
//   - Simple: self-loops return ErrLoopNotAllowed, parallel edges ErrMultiEdgeNotAllowed.
//   - Unweighted and unlabeled: a vertex is a string ID, an edge an unordered pair.
//   - A single sync.RWMutex guards the neighbor sets; readers never block each other.
//
// Deterministic iteration:
//
//	Vertices()        // lexicographic ID order
//	Edges()           // canonical (From < To), sorted by (From, To)
//	NeighborIDs(id)   // lexicographic ID order
//	DegreeSequence()  // degrees aligned with Vertices()
//
// The Vertices() order is the index enumeration used by the matrix package,
// so adjacency matrices built from the same graph are always identical.
//
// Core methods:
//
//	AddVertex(id) error            // O(1), idempotent
//	RemoveVertex(id) error         // O(deg)
//	AddEdge(u, v) error            // O(1)
//	RemoveEdge(u, v) error         // O(1)
//	HasVertex / HasEdge            // O(1)
//	Degree(id) (int, error)        // O(1)
//	Clone() / InducedSubgraph(g,k) // O(V+E)
package core
