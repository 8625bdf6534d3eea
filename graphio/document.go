// SPDX-License-Identifier: MIT
// Package: subiso/graphio
//
// document.go - the on-disk graph document and its conversion to core.Graph.
//
// Shape (YAML shown; JSON uses the same keys):
//
//	name: path3
//	vertices: [a, b, c]
//	edges: [[a, b], [b, c]]
//
// vertices is optional for vertices that appear in some edge; isolated
// vertices must be listed. Edge endpoints are unordered.

package graphio

import (
	"fmt"

	"github.com/katalvlaran/subiso/core"
)

// Document is the serialized form of a simple undirected graph.
type Document struct {
	Name     string     `yaml:"name,omitempty" json:"name,omitempty"`
	Vertices []string   `yaml:"vertices,flow,omitempty" json:"vertices,omitempty"`
	Edges    [][]string `yaml:"edges,flow" json:"edges"`
}

// Graph builds a core.Graph from d.
//
// Errors: ErrInvalidDocument wrapping the core sentinel (ErrEmptyVertexID,
// ErrLoopNotAllowed, ErrMultiEdgeNotAllowed) or a malformed edge.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for i, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: vertices[%d]: %w", ErrInvalidDocument, i, err)
		}
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edges[%d] has %d endpoints, want 2", ErrInvalidDocument, i, len(e))
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] %s-%s: %w", ErrInvalidDocument, i, e[0], e[1], err)
		}
	}

	return g, nil
}

// FromGraph snapshots g into a Document. Vertices are listed in full so that
// isolated vertices survive a round trip; edges follow g.Edges() order.
func FromGraph(g *core.Graph, name string) *Document {
	edges := g.Edges()
	d := &Document{
		Name:     name,
		Vertices: g.Vertices(),
		Edges:    make([][]string, len(edges)),
	}
	for i, e := range edges {
		d.Edges[i] = []string{e.From, e.To}
	}

	return d
}
