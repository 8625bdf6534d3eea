// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// errors.go - sentinel errors returned by constructors.
//
// Policy:
//   - Constructors never panic at runtime; they return one of these sentinels
//     wrapped with the constructor name and offending parameter.
//   - Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum of
// the requested topology (e.g. Cycle(n) with n < 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps a failure that is not attributable to a single
// parameter, such as a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind is returned by ByKind for an unregistered topology name.
var ErrUnknownKind = errors.New("builder: unknown kind")
