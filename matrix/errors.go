// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Adapters and validators return these sentinels (possibly wrapped
// with a context tag) and tests check them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (enforced in ValidateAdjacency):
// graph nil -> shape -> binary -> diagonal -> symmetry.

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil *AdjacencyMatrix receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonSquare signals that a row slice length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonBinary signals an adjacency entry other than 0 or 1.
	ErrNonBinary = errors.New("matrix: non-binary adjacency entry")

	// ErrNonZeroDiagonal signals a self-loop entry on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals that A[i][j] != A[j][i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownVertex indicates that a referenced vertex ID is not present
	// in the vertex index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")
)
