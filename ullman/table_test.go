// SPDX-License-Identifier: MIT
package ullman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTable_DegreeFeasibility(t *testing.T) {
	f, err := newTable([]int{1, 2, 1}, []int{1, 2, 2, 1})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, f.candidates(0))
	require.Equal(t, []int{1, 2}, f.candidates(1))
	require.Equal(t, []int{0, 1, 2, 3}, f.candidates(2))
	require.Equal(t, 10, f.count())

	_, err = newTable([]int{-1}, []int{1})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = newTable([]int{1}, []int{0, -2})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTable_CommitCloneValid(t *testing.T) {
	f, err := newTable([]int{0, 0}, []int{0, 0, 0})
	require.NoError(t, err)
	require.False(t, f.valid(), "rows with several candidates are not a mapping")

	g := f.clone()
	g.commit(0, 1)
	require.Equal(t, []int{1}, g.candidates(0))
	require.Equal(t, []int{0, 2}, g.candidates(1))
	require.Equal(t, 6, f.count(), "clone is independent")

	g.commit(1, 2)
	require.True(t, g.valid())
	require.False(t, g.hasEmptyRow())

	h := f.clone()
	h.commit(0, 0)
	h.cells[1*h.cols+1] = false
	h.cells[1*h.cols+2] = false
	require.True(t, h.rowEmpty(1))
	require.True(t, h.hasEmptyRow())
	require.False(t, h.valid())
}

func TestTable_ValidRejectsSharedColumn(t *testing.T) {
	f := &table{rows: 2, cols: 2, cells: []bool{
		true, false,
		true, false,
	}}
	require.False(t, f.valid())

	empty := &table{}
	require.True(t, empty.valid(), "the empty mapping is injective")
}
