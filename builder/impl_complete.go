// SPDX-License-Identifier: MIT
// Package: splitflow/builder
//
// impl_complete.go - implementation of Complete() constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits i → j for every ordered pair i≠j, i asc then j asc.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/splitflow/flow"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor in which everybody owes everybody else.
func Complete() Constructor {
	return func(nw *flow.Network, cfg builderConfig) error {
		n := nw.VertexCount()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				amount := cfg.draw()
				if err := nw.AddEdge(i, j, amount); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, %d): %w", methodComplete, i, j, amount, err)
				}
			}
		}

		return nil
	}
}
