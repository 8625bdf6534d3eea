// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// id_fn.go - vertex ID schemes.
//
// core.Graph enumerates vertices in lexicographic order, and that order is
// the index order seen by the matcher. PaddedIDFn keeps lexicographic and
// numeric order aligned for graphs with more than ten vertices.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal representation of idx ("0","1",...).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn maps 0→"A", 25→"Z", 26→"AA", 27→"AB", ...
// Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PaddedIDFn returns an IDFn producing zero-padded decimals of the given
// width ("000","001",...). Panics on width < 1.
func PaddedIDFn(width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("PaddedIDFn: width must be ≥ 1, got %d", width))
	}
	return func(idx int) string {
		return fmt.Sprintf("%0*d", width, idx)
	}
}

// SymbolNumberIDFn returns an IDFn producing prefix+decimal ("v0","v1",...).
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs is shorthand for WithIDScheme(SymbolIDFn).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithPaddedIDs is shorthand for WithIDScheme(PaddedIDFn(width)).
func WithPaddedIDs(width int) BuilderOption {
	return WithIDScheme(PaddedIDFn(width))
}
