// SPDX-License-Identifier: MIT
// Package: splitflow/builder
//
// impl_path.go - implementation of Path() constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//   - Amount per edge: cfg.draw().
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/splitflow/flow"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the chain 0→1→…→n-1.
func Path() Constructor {
	return func(nw *flow.Network, cfg builderConfig) error {
		n := nw.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		var amount int64
		for i := 1; i < n; i++ {
			amount = cfg.draw()
			if err := nw.AddEdge(i-1, i, amount); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, %d): %w", methodPath, i-1, i, amount, err)
			}
		}

		return nil
	}
}
