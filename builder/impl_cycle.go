// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_cycle.go - Cycle(n): C_n, the simple cycle on n vertices.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i-(i+1)%n in ascending i; the closing edge (n-1)-0 is last.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/core"
)

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor that builds the cycle graph C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
