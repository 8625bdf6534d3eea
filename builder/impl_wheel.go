// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} plus a hub joined to every rim vertex.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices), so the rim is a valid cycle.
//   - Rim vertices idFn(0..n-2) built by Cycle(n-1); hub has the fixed ID
//     "Center"; spokes are emitted in rim order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/core"
)

const (
	methodWheel      = "Wheel"
	minWheelVertices = 4
	wheelHubID       = "Center"
)

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelVertices, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, wheelHubID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
