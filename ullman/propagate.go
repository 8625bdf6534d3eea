// SPDX-License-Identifier: MIT
// Package: ullman
//
// propagate.go - adjacency-consistency propagation after a commit.
//
// For a committed pair (row, col), every still-open candidate (wi, wj) with
// wi > row and wj != col must agree with it: the relation between pattern
// vertices row and wi has to be reproduced between target vertices col and wj.
// Entries that disagree are cleared. Propagation only ever clears entries.

package ullman

// conflict reports whether pattern relation p (row~wi) is incompatible with
// target relation t (col~wj) under the engine's mode.
func (e *engine) conflict(p, t bool) bool {
	if e.mode == ModeMonomorphism {
		return p && !t
	}

	return p != t
}

// propagate clears every F[wi][wj] (wi in (row, n), wj != col) that conflicts
// with the committed pair (row, col). Returns the number of cleared entries.
//
// Complexity: O((n-row)·m).
func (e *engine) propagate(f *table, row, col int) int {
	var (
		wi, wj  int
		p, t    bool
		cleared int
	)
	for wi = row + 1; wi < e.n; wi++ {
		p = e.ap[row*e.n+wi]
		for wj = 0; wj < e.m; wj++ {
			if wj == col || !f.cells[wi*f.cols+wj] {
				continue
			}
			t = e.at[col*e.m+wj]
			if e.conflict(p, t) {
				f.cells[wi*f.cols+wj] = false
				cleared++
			}
		}
	}

	return cleared
}
