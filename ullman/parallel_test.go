// SPDX-License-Identifier: MIT
package ullman_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/ullman"
)

func TestMatch_ParallelAgreesWithSequential(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 30; seed++ {
		p := build(t, seed, builder.RandomSparse(5, 0.5))
		tg := build(t, seed*7+3, builder.RandomSparse(9, 0.45))
		for _, mode := range []ullman.Mode{ullman.ModeStrict, ullman.ModeMonomorphism} {
			want, err := ullman.IsSubgraphIsomorphic(p, tg, ullman.WithMode(mode))
			require.NoError(t, err)
			for _, k := range []int{1, 2, 8} {
				got, err := ullman.IsSubgraphIsomorphic(p, tg, ullman.WithMode(mode), ullman.WithParallelism(k))
				require.NoError(t, err)
				require.Equal(t, want, got, "seed=%d mode=%s k=%d", seed, mode, k)
			}
		}
	}
}

func TestMatch_ParallelStatsAndHook(t *testing.T) {
	t.Parallel()

	k3 := build(t, 0, builder.Complete(3))
	c6 := build(t, 0, builder.Cycle(6))

	var (
		st      ullman.Stats
		rowZero atomic.Int64
	)
	ok, err := ullman.IsSubgraphIsomorphic(k3, c6,
		ullman.WithParallelism(3),
		ullman.WithStats(&st),
		ullman.WithOnAssign(func(row, _ int) {
			if row == 0 {
				rowZero.Add(1)
			}
		}),
	)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, int64(6), rowZero.Load(), "every row-0 branch ran exactly once")
	require.GreaterOrEqual(t, st.Assignments, int64(6))
	require.Positive(t, st.DeadBranches)
}

// Five isolated vertices need an independent set of size 5, which C8 lacks,
// so every row-0 branch runs to exhaustion and all workers report stats.
func TestMatch_ParallelStatsMergedAfterWorkers(t *testing.T) {
	t.Parallel()

	p := build(t, 0, builder.RandomSparse(5, 0))
	tg := build(t, 0, builder.Cycle(8))

	var seq ullman.Stats
	ok, err := ullman.IsSubgraphIsomorphic(p, tg, ullman.WithStats(&seq))
	require.NoError(t, err)
	require.False(t, ok)

	for _, k := range []int{2, 4, 8} {
		var st ullman.Stats
		ok, err := ullman.IsSubgraphIsomorphic(p, tg, ullman.WithParallelism(k), ullman.WithStats(&st))
		require.NoError(t, err, "k=%d", k)
		require.False(t, ok, "k=%d", k)
		require.Equal(t, seq.Assignments, st.Assignments, "exhaustive search commits the same pairs, k=%d", k)
		require.Equal(t, seq.DeadBranches, st.DeadBranches, "k=%d", k)
		require.Equal(t, seq.MaxDepth, st.MaxDepth, "k=%d", k)
	}
}
