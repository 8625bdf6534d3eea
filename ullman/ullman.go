// SPDX-License-Identifier: MIT
// Package: ullman
//
// ullman.go - public entry points: Match (collaborator contract) and
// IsSubgraphIsomorphic (core.Graph convenience).

package ullman

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/matrix"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/subiso/ullman"

// Graph is the collaborator contract consumed by Match.
//
// Indices 0..VertexCount()-1 must be a stable enumeration; Degree(i) must
// equal the number of j with Adjacent(i, j); Adjacent must be symmetric with
// a false diagonal. *matrix.AdjacencyMatrix satisfies it.
type Graph interface {
	VertexCount() int
	Degree(i int) (int, error)
	Adjacent(i, j int) (bool, error)
}

var _ Graph = (*matrix.AdjacencyMatrix)(nil)

// nilable is implemented by collaborators that can detect a nil receiver
// wrapped in a non-nil Graph interface.
type nilable interface {
	IsNil() bool
}

// isNilGraph reports an untyped nil or a typed nil collaborator.
func isNilGraph(g Graph) bool {
	if g == nil {
		return true
	}
	if n, ok := g.(nilable); ok {
		return n.IsNil()
	}

	return false
}

// Match reports whether pattern is subgraph-isomorphic to target.
//
// Implementation:
//   - Stage 1: Resolve options (ErrOptionViolation) and reject nil graphs,
//     including typed nils exposing IsNil (ErrGraphNil).
//   - Stage 2: Prefetch both graphs, validating the collaborator contract (ErrInvalidInput).
//   - Stage 3: Pattern larger than target → false.
//   - Stage 4: Build the degree-feasibility table and run the search,
//     sequentially or fanned out per Options.Parallelism.
//
// Returns:
//   - (true, nil): some injective mapping satisfies the pruning rule of the mode.
//   - (false, nil): size mismatch or exhausted search.
//   - (false, err): invalid input/options or cancellation (ctx.Err()).
//
// Determinism:
//   - Identical inputs yield identical results in every mode and parallelism.
//
// Complexity:
//   - Time exponential in the pattern size in the worst case; O(n²+m²) prefetch.
func Match(pattern, target Graph, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}
	if isNilGraph(pattern) || isNilGraph(target) {
		return false, ErrGraphNil
	}

	ctx, span := otel.Tracer(tracerName).Start(o.Ctx, "ullman.Match",
		trace.WithAttributes(
			attribute.String("mode", o.Mode.String()),
			attribute.Int("parallelism", o.Parallelism),
		),
	)
	defer span.End()
	o.Ctx = ctx

	start := time.Now()
	found, result, st, err := run(pattern, target, o)
	elapsed := time.Since(start)

	observe(result, o.Mode, elapsed, st)
	if o.Stats != nil {
		*o.Stats = st
	}
	span.SetAttributes(
		attribute.String("result", result),
		attribute.Int64("search.nodes", st.Nodes),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
	}
	o.Logger.Debug("match_done",
		slog.String("result", result),
		slog.String("mode", o.Mode.String()),
		slog.Duration("elapsed", elapsed),
		slog.Int64("nodes", st.Nodes),
		slog.Int64("assignments", st.Assignments),
		slog.Int64("dead_branches", st.DeadBranches),
		slog.Int64("cleared", st.Cleared),
		slog.Int("max_depth", st.MaxDepth),
	)

	return found, err
}

// run performs stages 2–4 of Match and classifies the outcome.
func run(pattern, target Graph, o Options) (bool, string, Stats, error) {
	if err := o.Ctx.Err(); err != nil {
		return false, resultCanceled, Stats{}, err
	}

	p, err := prefetch(pattern, "pattern")
	if err != nil {
		return false, resultInvalid, Stats{}, fmt.Errorf("Match: %w", err)
	}
	t, err := prefetch(target, "target")
	if err != nil {
		return false, resultInvalid, Stats{}, fmt.Errorf("Match: %w", err)
	}
	o.Logger.Debug("match_start",
		slog.Int("pattern_vertices", p.n),
		slog.Int("target_vertices", t.n),
		slog.String("mode", o.Mode.String()),
	)
	trace.SpanFromContext(o.Ctx).SetAttributes(
		attribute.Int("pattern.vertices", p.n),
		attribute.Int("target.vertices", t.n),
	)

	if p.n > t.n {
		return false, resultSizeMismatch, Stats{}, nil
	}

	f, err := newTable(p.deg, t.deg)
	if err != nil {
		return false, resultInvalid, Stats{}, fmt.Errorf("Match: %w", err)
	}

	e := newEngine(p, t, o)
	var found bool
	if o.Parallelism > 1 {
		found, err = e.searchParallel(f, o.Parallelism)
	} else {
		found, err = e.search(f, 0)
	}

	switch {
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		return false, resultCanceled, e.stats, err
	case err != nil:
		return false, resultInvalid, e.stats, err
	case found:
		return true, resultFound, e.stats, nil
	default:
		return false, resultNotFound, e.stats, nil
	}
}

// IsSubgraphIsomorphic reports whether pattern occurs as a subgraph of target.
// Both graphs are converted with matrix.NewAdjacencyMatrix, so vertex indices
// follow the lexicographic order of core.Graph.Vertices().
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrInvalidInput, or the context error.
// Conversion failures also keep the underlying matrix sentinel in the chain.
func IsSubgraphIsomorphic(pattern, target *core.Graph, opts ...Option) (bool, error) {
	ap, err := matrix.NewAdjacencyMatrix(pattern)
	if err != nil {
		return false, fmt.Errorf("IsSubgraphIsomorphic: pattern: %w: %w", conversionKind(err), err)
	}
	at, err := matrix.NewAdjacencyMatrix(target)
	if err != nil {
		return false, fmt.Errorf("IsSubgraphIsomorphic: target: %w: %w", conversionKind(err), err)
	}

	return Match(ap, at, opts...)
}

// conversionKind maps a matrix conversion failure onto this package's sentinels.
func conversionKind(err error) error {
	if errors.Is(err, matrix.ErrGraphNil) {
		return ErrGraphNil
	}

	return ErrInvalidInput
}
