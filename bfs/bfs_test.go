// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/bfs"
	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/core"
)

func TestWalk_OrderAndDepth(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)

	res, err := bfs.Walk(g, "0")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "5", "2", "4", "3"}, res.Order)
	require.Equal(t, 3, res.Depth["3"])
	require.Equal(t, 3, res.Eccentricity())
}

func TestWalk_MaxDepthAndHook(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	var seen []string
	res, err := bfs.Walk(g, "0", bfs.WithMaxDepth(2), bfs.WithOnVisit(func(id string, _ int) error {
		seen = append(seen, id)
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, res.Order)
	require.Equal(t, res.Order, seen)

	stop := errors.New("stop")
	_, err = bfs.Walk(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "1" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestWalk_Errors(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))

	_, err := bfs.Walk(nil, "a")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Walk(g, "z")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.Walk(g, "a", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Walk(g, "a", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("c", "d"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "e"))
	require.NoError(t, g.AddVertex("z"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b", "e"}, {"c", "d"}, {"z"}}, comps)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	wheel, err := builder.BuildGraph(nil, builder.Wheel(6))
	require.NoError(t, err)
	p, err := bfs.Describe(wheel)
	require.NoError(t, err)
	require.Equal(t, bfs.Profile{
		Vertices:       6,
		Edges:          10,
		MaxDegree:      5,
		DegreeSequence: []int{5, 3, 3, 3, 3, 3},
		ComponentSizes: []int{6},
		Diameter:       2,
	}, p)

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddVertex("c"))
	p, err = bfs.Describe(g)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, p.ComponentSizes)
	require.Equal(t, -1, p.Diameter)
}
