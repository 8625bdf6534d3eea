// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/subiso/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateAdjacency covers each sentinel and the documented priority order.
func TestValidateAdjacency(t *testing.T) {
	cases := []struct {
		name string
		rows [][]uint8
		want error
	}{
		{name: "empty", rows: [][]uint8{}, want: nil},
		{name: "single", rows: [][]uint8{{0}}, want: nil},
		{name: "edge", rows: [][]uint8{{0, 1}, {1, 0}}, want: nil},
		{name: "ragged", rows: [][]uint8{{0, 1}, {1}}, want: matrix.ErrNonSquare},
		{name: "wide", rows: [][]uint8{{0, 1, 0}, {1, 0, 0}}, want: matrix.ErrNonSquare},
		{name: "non-binary", rows: [][]uint8{{0, 2}, {2, 0}}, want: matrix.ErrNonBinary},
		{name: "loop", rows: [][]uint8{{1, 0}, {0, 0}}, want: matrix.ErrNonZeroDiagonal},
		{name: "asymmetric", rows: [][]uint8{{0, 1}, {0, 0}}, want: matrix.ErrAsymmetry},
		// non-binary wins over the asymmetric loop in the same matrix
		{name: "priority", rows: [][]uint8{{1, 3}, {0, 0}}, want: matrix.ErrNonBinary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateAdjacency(tc.rows)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
