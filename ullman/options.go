// SPDX-License-Identifier: MIT
// Package: ullman
//
// options.go - functional options, search modes and statistics.
//
// Invalid options are recorded while applying them and surfaced by Match as
// ErrOptionViolation; option constructors never panic.

package ullman

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects the pruning rule applied by the constraint propagator.
type Mode int

const (
	// ModeStrict clears F[wi][wj] whenever A_P[row][wi] != A_T[col][wj]:
	// both edges and non-edges between assigned and unassigned pattern
	// vertices must be mirrored in the target. This is the default.
	ModeStrict Mode = iota

	// ModeMonomorphism clears F[wi][wj] only when the pattern has the edge
	// row-wi and the target lacks col-wj: pattern edges must be preserved,
	// pattern non-edges may map onto target edges.
	ModeMonomorphism
)

// String returns the canonical lowercase name of m.
func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeMonomorphism:
		return "monomorphism"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a textual mode name into a Mode.
// Accepted: "strict", "" (strict), "monomorphism", "mono".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ModeStrict, nil
	case "mono", "monomorphism":
		return ModeMonomorphism, nil
	default:
		return ModeStrict, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Stats summarizes the work done by one Match call.
type Stats struct {
	// Nodes counts search-state expansions (recursive calls).
	Nodes int64

	// Assignments counts committed (row, col) pairs.
	Assignments int64

	// DeadBranches counts assignments rejected because propagation
	// emptied some row of the candidate table.
	DeadBranches int64

	// Cleared counts candidate entries removed by propagation.
	Cleared int64

	// MaxDepth is the deepest row reached.
	MaxDepth int
}

// add accumulates other into s.
func (s *Stats) add(other Stats) {
	s.Nodes += other.Nodes
	s.Assignments += other.Assignments
	s.DeadBranches += other.DeadBranches
	s.Cleared += other.Cleared
	if other.MaxDepth > s.MaxDepth {
		s.MaxDepth = other.MaxDepth
	}
}

// Option configures Match via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Match call.
type Options struct {
	// Ctx allows cancellation and deadlines. The search polls it sparsely.
	Ctx context.Context

	// Mode selects the pruning rule.
	Mode Mode

	// Parallelism > 1 fans the row-0 candidates out over that many workers.
	// 0 and 1 run the sequential search.
	Parallelism int

	// Logger receives match_start/match_done at debug level.
	Logger *slog.Logger

	// OnAssign is called after each committed assignment, before
	// propagation. In parallel mode it is called from several goroutines.
	OnAssign func(row, col int)

	// Stats, if non-nil, receives the aggregated statistics of the call.
	Stats *Stats

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - ModeStrict
//   - sequential search
//   - discarding logger
//   - no-op OnAssign hook
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Mode:        ModeStrict,
		Parallelism: 0,
		Logger:      slog.New(slog.DiscardHandler),
		OnAssign:    func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the pruning rule. Unknown modes → ErrOptionViolation.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case ModeStrict, ModeMonomorphism:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithParallelism sets the number of top-level workers.
//
//	k > 1: parallel fan-out over row-0 candidates
//	k == 0 or 1: sequential
//	k < 0: invalid option → ErrOptionViolation
func WithParallelism(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Parallelism cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Parallelism = k
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAssign registers a callback run after each committed assignment.
func WithOnAssign(fn func(row, col int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}

// WithStats asks Match to copy its statistics into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		if s != nil {
			o.Stats = s
		}
	}
}
