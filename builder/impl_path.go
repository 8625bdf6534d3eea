// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_path.go - Path(n): P_n, the simple path on n vertices.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices idFn(0..n-1); edges i-(i+1) for i in [0, n-2], ascending.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor that builds the path graph P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
