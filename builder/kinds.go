// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// kinds.go - name → Constructor lookup for command-line and config driven
// generation.

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// KindParams carries the numeric parameters a named topology may consume.
// N is the primary size; M is the second partition size of "bipartite";
// P is the edge probability of "random".
type KindParams struct {
	N int
	M int
	P float64
}

var kinds = map[string]func(KindParams) Constructor{
	"path":      func(k KindParams) Constructor { return Path(k.N) },
	"cycle":     func(k KindParams) Constructor { return Cycle(k.N) },
	"complete":  func(k KindParams) Constructor { return Complete(k.N) },
	"star":      func(k KindParams) Constructor { return Star(k.N) },
	"wheel":     func(k KindParams) Constructor { return Wheel(k.N) },
	"bipartite": func(k KindParams) Constructor { return CompleteBipartite(k.N, k.M) },
	"random":    func(k KindParams) Constructor { return RandomSparse(k.N, k.P) },
}

// Kinds returns the registered topology names in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ByKind returns the Constructor registered under name (case-insensitive).
// Parameter validation is deferred to the Constructor itself.
func ByKind(name string, params KindParams) (Constructor, error) {
	mk, ok := kinds[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("ByKind: %q (known: %s): %w", name, strings.Join(Kinds(), ", "), ErrUnknownKind)
	}

	return mk(params), nil
}
