// SPDX-License-Identifier: MIT
// Package: ullman
//
// table.go - the candidate (future-matching) table F and its boolean algebra.
//
// Layout: row-major flat buffer, cells[i*cols+j] == F[i][j], one row per
// pattern vertex and one column per target vertex. Each search branch owns its
// own table; clone is the undo mechanism.

package ullman

import "fmt"

// table is the n×m candidate matrix.
type table struct {
	rows, cols int
	cells      []bool
}

// newTable builds the initial table: F[i][j] = degP[i] <= degT[j].
// Negative degrees → ErrInvalidInput.
// Complexity: O(n·m).
func newTable(degP, degT []int) (*table, error) {
	for i, d := range degP {
		if d < 0 {
			return nil, fmt.Errorf("%w: pattern degree[%d]=%d", ErrInvalidInput, i, d)
		}
	}
	for j, d := range degT {
		if d < 0 {
			return nil, fmt.Errorf("%w: target degree[%d]=%d", ErrInvalidInput, j, d)
		}
	}

	f := &table{rows: len(degP), cols: len(degT), cells: make([]bool, len(degP)*len(degT))}
	var i, j int
	for i = 0; i < f.rows; i++ {
		for j = 0; j < f.cols; j++ {
			f.cells[i*f.cols+j] = degP[i] <= degT[j]
		}
	}

	return f, nil
}

// at returns F[i][j].
func (f *table) at(i, j int) bool { return f.cells[i*f.cols+j] }

// clone returns an independent copy of f.
func (f *table) clone() *table {
	cp := &table{rows: f.rows, cols: f.cols, cells: make([]bool, len(f.cells))}
	copy(cp.cells, f.cells)

	return cp
}

// commit fixes row → col: zero row and column col, then set F[row][col].
func (f *table) commit(row, col int) {
	var i, j int
	for j = 0; j < f.cols; j++ {
		f.cells[row*f.cols+j] = false
	}
	for i = 0; i < f.rows; i++ {
		f.cells[i*f.cols+col] = false
	}
	f.cells[row*f.cols+col] = true
}

// rowEmpty reports whether row i has no true entry.
func (f *table) rowEmpty(i int) bool {
	for _, c := range f.cells[i*f.cols : (i+1)*f.cols] {
		if c {
			return false
		}
	}

	return true
}

// hasEmptyRow reports whether any row has no true entry (dead branch).
func (f *table) hasEmptyRow() bool {
	for i := 0; i < f.rows; i++ {
		if f.rowEmpty(i) {
			return true
		}
	}

	return false
}

// valid reports whether every row sums to exactly one and every column to
// at most one: the table encodes an injective total assignment.
func (f *table) valid() bool {
	var i, j, sum int
	for i = 0; i < f.rows; i++ {
		sum = 0
		for j = 0; j < f.cols; j++ {
			if f.cells[i*f.cols+j] {
				sum++
			}
		}
		if sum != 1 {
			return false
		}
	}
	for j = 0; j < f.cols; j++ {
		sum = 0
		for i = 0; i < f.rows; i++ {
			if f.cells[i*f.cols+j] {
				sum++
			}
		}
		if sum > 1 {
			return false
		}
	}

	return true
}

// count returns the number of true entries.
func (f *table) count() int {
	n := 0
	for _, c := range f.cells {
		if c {
			n++
		}
	}

	return n
}

// candidates returns the true columns of row i in ascending order.
func (f *table) candidates(i int) []int {
	out := make([]int, 0, f.cols)
	for j := 0; j < f.cols; j++ {
		if f.at(i, j) {
			out = append(out, j)
		}
	}

	return out
}
