// SPDX-License-Identifier: MIT
// Package: subiso/graphio
//
// errors.go - sentinel errors for document I/O.

package graphio

import "errors"

var (
	// ErrUnknownFormat is returned for a format name or file extension that
	// is neither YAML nor JSON.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrDecode wraps syntax and type errors from the underlying decoder.
	ErrDecode = errors.New("graphio: decode failed")

	// ErrInvalidDocument is returned when a decoded document does not describe
	// a simple undirected graph: an edge without exactly two endpoints, an
	// empty ID, a self-loop, or a repeated edge.
	ErrInvalidDocument = errors.New("graphio: invalid document")
)
