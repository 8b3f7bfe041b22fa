// SPDX-License-Identifier: MIT
// Package: splitflow/builder
//
// impl_cycle.go - implementation of Cycle() constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i → (i+1) mod n for i=0..n-1 in increasing order.
//   - With a constant amount every net position is zero.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/splitflow/flow"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring 0→1→…→n-1→0.
func Cycle() Constructor {
	return func(nw *flow.Network, cfg builderConfig) error {
		n := nw.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			j := (i + 1) % n
			amount := cfg.draw()
			if err := nw.AddEdge(i, j, amount); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, %d): %w", methodCycle, i, j, amount, err)
			}
		}

		return nil
	}
}
