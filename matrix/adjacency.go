// SPDX-License-Identifier: MIT
// Package matrix provides graph-aware adjacency-matrix views of core.Graph.

package matrix

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/subiso/core"
)

// AdjacencyMatrix is an immutable 0/1 adjacency view of an undirected simple graph.
//
// Description:
//
//	bits[i*n+j] == 1 iff vertices vertexByIndex[i] and vertexByIndex[j] are
//	adjacent. The matrix is symmetric with a zero diagonal. degrees[i] is the
//	row sum of row i, precomputed at construction.
//
// Index order is the stable enumeration of the source: core.Graph.Vertices()
// (lexicographic) for NewAdjacencyMatrix, row order for FromRows.
//
// Time complexity:
//   - Adjacent/Degree/VertexAt: O(1)
//   - Index: O(1) (hash lookup)
//   - construction: O(V² + E)
//
// Memory:
//   - O(V²) bytes.
//
// Concurrency:
//   - No mutation after construction; safe for concurrent readers.
type AdjacencyMatrix struct {
	n             int
	bits          []uint8
	degrees       []int
	vertexIndex   map[string]int
	vertexByIndex []string
}

// NewAdjacencyMatrix builds an AdjacencyMatrix from g.
// Stage 1 (Validate): ensure g is non-nil.
// Stage 2 (Prepare): snapshot the sorted vertex list and build the index.
// Stage 3 (Execute): set bits for every neighbor pair.
// Stage 4 (Finalize): compute row degrees.
//
// The snapshot is taken vertex by vertex; concurrent mutation of g while
// building may yield ErrUnknownVertex.
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.Vertices()
	am := newEmpty(ids)

	var (
		i, j int
		ok   bool
		nbrs []string
		nb   string
		err  error
	)
	for i = range ids {
		nbrs, err = g.NeighborIDs(ids[i])
		if err != nil {
			return nil, fmt.Errorf("NewAdjacencyMatrix: NeighborIDs(%q): %w", ids[i], err)
		}
		for _, nb = range nbrs {
			j, ok = am.vertexIndex[nb]
			if !ok {
				return nil, fmt.Errorf("NewAdjacencyMatrix: neighbor %q of %q: %w", nb, ids[i], ErrUnknownVertex)
			}
			am.bits[i*am.n+j] = 1
		}
	}
	am.computeDegrees()

	return am, nil
}

// FromRows builds an AdjacencyMatrix from raw 0/1 rows after ValidateAdjacency.
// Vertex IDs are the decimal row indices "0", "1", ... in row order.
//
// Errors: any ValidateAdjacency sentinel, wrapped with "FromRows".
// Complexity: O(n²).
func FromRows(rows [][]uint8) (*AdjacencyMatrix, error) {
	if err := ValidateAdjacency(rows); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	ids := make([]string, len(rows))
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}
	am := newEmpty(ids)
	for i, r := range rows {
		copy(am.bits[i*am.n:(i+1)*am.n], r)
	}
	am.computeDegrees()

	return am, nil
}

// newEmpty allocates a zero matrix over ids, in the given order.
func newEmpty(ids []string) *AdjacencyMatrix {
	n := len(ids)
	idx := make(map[string]int, n)
	rev := make([]string, n)
	for i, id := range ids {
		idx[id] = i
		rev[i] = id
	}

	return &AdjacencyMatrix{
		n:             n,
		bits:          make([]uint8, n*n),
		degrees:       make([]int, n),
		vertexIndex:   idx,
		vertexByIndex: rev,
	}
}

// computeDegrees fills degrees with row sums.
func (am *AdjacencyMatrix) computeDegrees() {
	var i, j, d int
	for i = 0; i < am.n; i++ {
		d = 0
		for j = 0; j < am.n; j++ {
			d += int(am.bits[i*am.n+j])
		}
		am.degrees[i] = d
	}
}

// IsNil reports whether am is a nil pointer, which may hide behind a
// non-nil interface value.
func (am *AdjacencyMatrix) IsNil() bool { return am == nil }

// VertexCount returns the matrix dimension. A nil receiver has zero vertices.
func (am *AdjacencyMatrix) VertexCount() int {
	if am == nil {
		return 0
	}

	return am.n
}

// Degree returns the number of neighbors of index i.
// Returns ErrOutOfRange for i outside [0, VertexCount()).
func (am *AdjacencyMatrix) Degree(i int) (int, error) {
	if am == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= am.n {
		return 0, fmt.Errorf("Degree: index %d: %w", i, ErrOutOfRange)
	}

	return am.degrees[i], nil
}

// Adjacent reports whether indices i and j are joined by an edge.
// Returns ErrOutOfRange for either index outside [0, VertexCount()).
func (am *AdjacencyMatrix) Adjacent(i, j int) (bool, error) {
	if am == nil {
		return false, ErrNilMatrix
	}
	if i < 0 || i >= am.n || j < 0 || j >= am.n {
		return false, fmt.Errorf("Adjacent: (%d,%d): %w", i, j, ErrOutOfRange)
	}

	return am.bits[i*am.n+j] == 1, nil
}

// Index returns the matrix index of vertex id.
func (am *AdjacencyMatrix) Index(id string) (int, error) {
	if am == nil {
		return 0, ErrNilMatrix
	}
	i, ok := am.vertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("Index: %q: %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// VertexAt returns the vertex ID stored at index i.
func (am *AdjacencyMatrix) VertexAt(i int) (string, error) {
	if am == nil {
		return "", ErrNilMatrix
	}
	if i < 0 || i >= am.n {
		return "", fmt.Errorf("VertexAt: index %d: %w", i, ErrOutOfRange)
	}

	return am.vertexByIndex[i], nil
}

// Degrees returns a copy of the degree sequence in index order.
func (am *AdjacencyMatrix) Degrees() []int {
	if am == nil {
		return nil
	}
	out := make([]int, am.n)
	copy(out, am.degrees)

	return out
}

// Rows returns a freshly allocated copy of the matrix as 0/1 rows.
func (am *AdjacencyMatrix) Rows() [][]uint8 {
	if am == nil {
		return nil
	}
	out := make([][]uint8, am.n)
	for i := range out {
		out[i] = make([]uint8, am.n)
		copy(out[i], am.bits[i*am.n:(i+1)*am.n])
	}

	return out
}

// ToGraph reconstructs a core.Graph from the matrix, using the stored vertex IDs.
// Complexity: O(V²).
func (am *AdjacencyMatrix) ToGraph() (*core.Graph, error) {
	if am == nil {
		return nil, ErrNilMatrix
	}
	g := core.NewGraph()
	var i, j int
	for i = 0; i < am.n; i++ {
		if err := g.AddVertex(am.vertexByIndex[i]); err != nil {
			return nil, fmt.Errorf("ToGraph: AddVertex(%q): %w", am.vertexByIndex[i], err)
		}
	}
	for i = 0; i < am.n; i++ {
		for j = i + 1; j < am.n; j++ {
			if am.bits[i*am.n+j] == 0 {
				continue
			}
			if err := g.AddEdge(am.vertexByIndex[i], am.vertexByIndex[j]); err != nil {
				return nil, fmt.Errorf("ToGraph: AddEdge(%q,%q): %w", am.vertexByIndex[i], am.vertexByIndex[j], err)
			}
		}
	}

	return g, nil
}
