// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/subiso/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// from a shared hub are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersDuringWrites mixes queries with mutations to
// surface races under -race.
func TestConcurrentReadersDuringWrites(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("Base", fmt.Sprintf("V%d", id))
		}(i)

		go func() {
			defer wg.Done()
			_ = g.Vertices()
			_ = g.Edges()
			_, _ = g.Degree("Base")
			_ = g.DegreeSequence()
		}()
	}
	wg.Wait()

	deg, err := g.Degree("Base")
	require.NoError(t, err)
	require.Equal(t, rounds, deg)
}
