// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs leftPrefix+idFn(i), right IDs rightPrefix+idFn(j).
//   - Edges emitted in (i asc, j asc) order.
//
// Complexity: O(n1·n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/core"
)

const (
	methodBipartite  = "CompleteBipartite"
	minPartitionSize = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		right := make([]string, n2)
		var i, j int
		for i = 0; i < n1; i++ {
			left[i] = cfg.leftPrefix + cfg.idFn(i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodBipartite, left[i], err)
			}
		}
		for j = 0; j < n2; j++ {
			right[j] = cfg.rightPrefix + cfg.idFn(j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodBipartite, right[j], err)
			}
		}
		for i = 0; i < n1; i++ {
			for j = 0; j < n2; j++ {
				if err := addEdge(g, methodBipartite, left[i], right[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
