// SPDX-License-Identifier: MIT
package ullman

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeGraph is a hand-wired collaborator used to violate the contract.
type fakeGraph struct {
	n      int
	adj    [][]bool
	deg    []int
	degErr error
	adjErr error
}

func (f *fakeGraph) VertexCount() int { return f.n }

func (f *fakeGraph) Degree(i int) (int, error) {
	if f.degErr != nil {
		return 0, f.degErr
	}

	return f.deg[i], nil
}

func (f *fakeGraph) Adjacent(i, j int) (bool, error) {
	if f.adjErr != nil {
		return false, f.adjErr
	}

	return f.adj[i][j], nil
}

func edge2() *fakeGraph {
	return &fakeGraph{n: 2, adj: [][]bool{{false, true}, {true, false}}, deg: []int{1, 1}}
}

func TestPrefetch_ContractViolations(t *testing.T) {
	lookup := errors.New("lookup failed")

	tests := []struct {
		name string
		g    *fakeGraph
	}{
		{"negative count", &fakeGraph{n: -1}},
		{"degree lookup error", func() *fakeGraph { g := edge2(); g.degErr = lookup; return g }()},
		{"adjacency lookup error", func() *fakeGraph { g := edge2(); g.adjErr = lookup; return g }()},
		{"asymmetric", &fakeGraph{n: 2, adj: [][]bool{{false, true}, {false, false}}, deg: []int{1, 0}}},
		{"self loop", &fakeGraph{n: 1, adj: [][]bool{{true}}, deg: []int{1}}},
		{"degree mismatch", &fakeGraph{n: 2, adj: [][]bool{{false, true}, {true, false}}, deg: []int{2, 1}}},
		{"negative degree", &fakeGraph{n: 1, adj: [][]bool{{false}}, deg: []int{-1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := prefetch(tc.g, "pattern")
			require.ErrorIs(t, err, ErrInvalidInput)

			// Detected before the size check.
			single := &fakeGraph{n: 1, adj: [][]bool{{false}}, deg: []int{0}}
			ok, err := Match(tc.g, single)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.False(t, ok)
		})
	}
}

func TestPrefetch_Valid(t *testing.T) {
	d, err := prefetch(edge2(), "target")
	require.NoError(t, err)
	require.Equal(t, 2, d.n)
	require.Equal(t, []int{1, 1}, d.deg)
	require.Equal(t, []bool{false, true, true, false}, d.adj)
}

func TestEngine_Interrupted(t *testing.T) {
	e := newEngine(dense{}, dense{}, DefaultOptions())
	for i := 0; i < 2*cancelEvery; i++ {
		require.NoError(t, e.interrupted())
	}

	var stop atomic.Bool
	stop.Store(true)
	w := e.fork(e.ctx, &stop)
	require.ErrorIs(t, w.interrupted(), errStopped)
	require.Zero(t, w.stats.Nodes)
}
