// SPDX-License-Identifier: MIT
package ullman_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/core"
)

// intGraph builds a graph over the given integer labels and edges.
func intGraph(t testing.TB, vertices []int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(strconv.Itoa(v)))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(strconv.Itoa(e[0]), strconv.Itoa(e[1])))
	}

	return g
}

// build runs builder.BuildGraph with zero-padded IDs so that lexicographic
// and numeric vertex order coincide.
func build(t testing.TB, seed int64, ctor builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithPaddedIDs(3), builder.WithSeed(seed)}, ctor)
	require.NoError(t, err)

	return g
}

// randomSubset keeps each vertex of g with probability 1/2, at least one.
func randomSubset(rng *rand.Rand, g *core.Graph) map[string]bool {
	vs := g.Vertices()
	keep := make(map[string]bool, len(vs))
	for _, v := range vs {
		if rng.Intn(2) == 0 {
			keep[v] = true
		}
	}
	if len(keep) == 0 {
		keep[vs[rng.Intn(len(vs))]] = true
	}

	return keep
}

// dropRandomEdges removes each edge of g with probability 1/3.
func dropRandomEdges(t testing.TB, rng *rand.Rand, g *core.Graph) {
	t.Helper()
	for _, e := range g.Edges() {
		if rng.Intn(3) == 0 {
			require.NoError(t, g.RemoveEdge(e.From, e.To))
		}
	}
}
