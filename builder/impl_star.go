// SPDX-License-Identifier: MIT
// Package: splitflow/builder
//
// impl_star.go - implementation of Star() constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub (the one who paid for everybody).
//   - Emits leaf → hub for leaves 1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/splitflow/flow"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor in which every participant owes vertex 0.
func Star() Constructor {
	return func(nw *flow.Network, cfg builderConfig) error {
		n := nw.VertexCount()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		for leaf := 1; leaf < n; leaf++ {
			amount := cfg.draw()
			if err := nw.AddEdge(leaf, starHub, amount); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, %d): %w", methodStar, leaf, starHub, amount, err)
			}
		}

		return nil
	}
}
