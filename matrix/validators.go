// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for adjacency-shape checks.
//  - Return sentinels wrapped with a validator tag so call sites can branch
//    with errors.Is and still read which check fired.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that every row has exactly len(rows) entries.
//
// Errors: ErrNonSquare (wrapped).
// Complexity: O(n).
func ValidateSquare(rows [][]uint8) error {
	n := len(rows)
	for i, r := range rows {
		if len(r) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d has %d entries, want %d", i, len(r), n), ErrNonSquare)
		}
	}

	return nil
}

// ValidateAdjacency checks that rows describe an undirected simple graph:
// square, 0/1 entries, zero diagonal, symmetric.
//
// Errors are reported in that priority order:
// ErrNonSquare → ErrNonBinary → ErrNonZeroDiagonal → ErrAsymmetry.
// Complexity: O(n²).
func ValidateAdjacency(rows [][]uint8) error {
	if err := ValidateSquare(rows); err != nil {
		return err
	}
	n := len(rows)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if rows[i][j] > 1 {
				return validatorErrorf(fmt.Sprintf("ValidateAdjacency: A[%d][%d]=%d", i, j, rows[i][j]), ErrNonBinary)
			}
		}
	}
	for i = 0; i < n; i++ {
		if rows[i][i] != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateAdjacency: A[%d][%d]", i, i), ErrNonZeroDiagonal)
		}
	}
	// Upper triangle only; the diagonal is already known to be zero.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return validatorErrorf(fmt.Sprintf("ValidateAdjacency: A[%d][%d] != A[%d][%d]", i, j, j, i), ErrAsymmetry)
			}
		}
	}

	return nil
}
