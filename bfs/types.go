// SPDX-License-Identifier: MIT
// Package: subiso/bfs
//
// types.go - sentinels, functional options and the walk result.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when the graph is nil.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Walk.
type Option func(*Options)

// Options holds walk parameters and hooks.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. A non-nil error aborts
	// the walk and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 stops expansion beyond that depth; 0 means unlimited.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context, a no-op hook
// and unlimited depth.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
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

// WithOnVisit registers a per-vertex hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to vertices at distance ≤ d. d < 0 is an
// ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of one walk.
type Result struct {
	// Order lists vertices in visit order.
	Order []string
	// Depth maps each visited vertex to its hop distance from the start.
	Depth map[string]int
}

// Eccentricity returns the largest depth reached.
func (r *Result) Eccentricity() int {
	maxDepth := 0
	for _, d := range r.Depth {
		if d > maxDepth {
			maxDepth = d
		}
	}

	return maxDepth
}
