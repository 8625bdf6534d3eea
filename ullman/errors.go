// SPDX-License-Identifier: MIT
// Package: ullman
//
// errors.go - sentinel errors for the matcher.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context is attached with %w at the point of failure.
//   - Exhausting the search is NOT an error: it yields (false, nil).
//   - A pattern larger than the target is NOT an error: it yields (false, nil).
//   - Cancellation surfaces as the context's own error (context.Canceled or
//     context.DeadlineExceeded), never as a false result.

package ullman

import "errors"

var (
	// ErrGraphNil is returned when the pattern or the target is nil.
	ErrGraphNil = errors.New("ullman: graph is nil")

	// ErrInvalidInput is returned when a graph violates the collaborator
	// contract: negative vertex count, degree lookup failure, adjacency
	// lookup failure, asymmetric or looped adjacency, or a degree that does
	// not match its adjacency row. It is detected before the search begins.
	ErrInvalidInput = errors.New("ullman: invalid input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ullman: invalid option supplied")
)

// errStopped is an internal signal: a sibling worker already found a match.
var errStopped = errors.New("ullman: search stopped")
