// SPDX-License-Identifier: MIT
package ullman

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/core"
)

// Not parallel: counters are process-global.
func TestMatch_RecordsMetrics(t *testing.T) {
	p, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	tg, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)

	found := testutil.ToFloat64(matchTotal.WithLabelValues(resultFound))
	notFound := testutil.ToFloat64(matchTotal.WithLabelValues(resultNotFound))
	mismatch := testutil.ToFloat64(matchTotal.WithLabelValues(resultSizeMismatch))
	canceled := testutil.ToFloat64(matchTotal.WithLabelValues(resultCanceled))
	nodes := testutil.ToFloat64(searchNodes)

	ok, err := IsSubgraphIsomorphic(p, tg)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = IsSubgraphIsomorphic(tg, p)
	require.NoError(t, err)
	require.False(t, ok)

	k3, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)
	ok, err = IsSubgraphIsomorphic(k3, tg)
	require.NoError(t, err)
	require.False(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = IsSubgraphIsomorphic(core.NewGraph(), tg, WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, found+1, testutil.ToFloat64(matchTotal.WithLabelValues(resultFound)))
	require.Equal(t, notFound+1, testutil.ToFloat64(matchTotal.WithLabelValues(resultNotFound)))
	require.Equal(t, mismatch+1, testutil.ToFloat64(matchTotal.WithLabelValues(resultSizeMismatch)))
	require.Equal(t, canceled+1, testutil.ToFloat64(matchTotal.WithLabelValues(resultCanceled)))
	require.Greater(t, testutil.ToFloat64(searchNodes), nodes)
}
