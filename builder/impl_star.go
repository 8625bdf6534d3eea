// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_star.go - Star(n): one hub joined to n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is idFn(0); leaves idFn(1..n-1); spokes emitted in leaf order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/core"
)

const (
	methodStar      = "Star"
	minStarVertices = 2
)

// Star returns a Constructor that builds the star graph S_{n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
