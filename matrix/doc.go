// Package matrix offers adjacency-matrix views of core graphs.
//
// The matrix package provides:
//
//   - AdjacencyMatrix: an immutable 0/1, symmetric, zero-diagonal matrix with
//     O(1) adjacency and degree lookups, indexed by the stable vertex order
//     of core.Graph.Vertices().
//   - FromRows: ingestion of raw 0/1 rows, validated by ValidateAdjacency.
//   - ToGraph: the inverse conversion back to a core.Graph.
//
// AdjacencyMatrix satisfies the ullman.Graph collaborator contract
// (VertexCount, Degree, Adjacent), so it can be handed directly to the matcher.
//
// Matrices are best for the small pattern/target sizes that exact subgraph
// search can handle; memory is O(V²).
package matrix
