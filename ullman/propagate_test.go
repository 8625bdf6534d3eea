// SPDX-License-Identifier: MIT
package ullman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/matrix"
)

// denseOf prefetches a builder topology through the matrix collaborator.
func denseOf(t *testing.T, seed int64, ctor builder.Constructor) dense {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithPaddedIDs(3), builder.WithSeed(seed)}, ctor)
	require.NoError(t, err)
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	d, err := prefetch(am, "test")
	require.NoError(t, err)

	return d
}

func TestConflict_Modes(t *testing.T) {
	strict := &engine{mode: ModeStrict}
	mono := &engine{mode: ModeMonomorphism}

	for _, tc := range []struct {
		p, t         bool
		strict, mono bool
	}{
		{p: true, t: true, strict: false, mono: false},
		{p: true, t: false, strict: true, mono: true},
		{p: false, t: true, strict: true, mono: false},
		{p: false, t: false, strict: false, mono: false},
	} {
		require.Equal(t, tc.strict, strict.conflict(tc.p, tc.t), "strict p=%v t=%v", tc.p, tc.t)
		require.Equal(t, tc.mono, mono.conflict(tc.p, tc.t), "mono p=%v t=%v", tc.p, tc.t)
	}
}

func TestPropagate_ScenarioPathInPath(t *testing.T) {
	p := denseOf(t, 0, builder.Path(3))
	tg := denseOf(t, 0, builder.Path(4))
	e := newEngine(p, tg, DefaultOptions())

	f, err := newTable(p.deg, tg.deg)
	require.NoError(t, err)
	f.commit(0, 0)
	cleared := e.propagate(f, 0, 0)

	// Pattern 0-1 must land next to target 0; pattern 2 must not.
	require.Equal(t, []int{1}, f.candidates(1))
	require.Equal(t, []int{2, 3}, f.candidates(2))
	require.Equal(t, 2, cleared)
}

// Propagation only clears: no entry turns on, rows at or above the committed
// row and the committed column are untouched, and the returned count equals
// the drop in true entries.
func TestPropagate_Monotone(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for seed := int64(1); seed <= 25; seed++ {
		for _, mode := range []Mode{ModeStrict, ModeMonomorphism} {
			p := denseOf(t, seed, builder.RandomSparse(5, 0.5))
			tg := denseOf(t, seed+50, builder.RandomSparse(8, 0.5))
			o := DefaultOptions()
			o.Mode = mode
			e := newEngine(p, tg, o)

			f, err := newTable(p.deg, tg.deg)
			require.NoError(t, err)
			for r := 0; r < p.n; r++ {
				cands := f.candidates(r)
				if len(cands) == 0 {
					break
				}
				col := cands[rng.Intn(len(cands))]
				f.commit(r, col)

				before := f.clone()
				cleared := e.propagate(f, r, col)

				require.Equal(t, before.count()-cleared, f.count())
				for i := 0; i < f.rows; i++ {
					for j := 0; j < f.cols; j++ {
						if f.at(i, j) {
							require.True(t, before.at(i, j), "entry (%d,%d) turned on", i, j)
						}
						if i <= r || j == col {
							require.Equal(t, before.at(i, j), f.at(i, j), "entry (%d,%d) outside the propagation window changed", i, j)
						}
					}
				}
			}
		}
	}
}
