// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge declarations, sentinel errors, and the NewGraph constructor.
//
// Policy:
//   - Graphs are undirected and simple: no self-loops, no parallel edges.
//   - Edges are unweighted and unlabeled; an edge is just an unordered pair.
//   - Vertex identity is a non-empty string.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop u-u requested.
//	ErrMultiEdgeNotAllowed - the pair already has an edge.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two distinct vertices.
//
// Edges returned by Graph are canonical: From < To lexicographically.
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string
}

// Graph is an undirected simple graph guarded by a single RWMutex.
//
// adjacency[u] exists for every vertex u (possibly empty) and holds the set
// of neighbors of u. Every edge is mirrored: v ∈ adjacency[u] ⇔ u ∈ adjacency[v].
// edgeCount tracks the number of unordered pairs so EdgeCount is O(1).
type Graph struct {
	mu sync.RWMutex

	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
}

