// SPDX-License-Identifier: MIT
// Package: splitflow/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p) constructor.
//
// Model: Erdős–Rényi-like; each ordered pair (i,j), i≠j, becomes a debt
// i → j independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order: i asc, then j asc; the amount is drawn only for kept edges.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/splitflow/flow"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples debts with probability p.
func RandomSparse(p float64) Constructor {
	return func(nw *flow.Network, cfg builderConfig) error {
		n := nw.VertexCount()
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == probMax
				if !keep && p > probMin {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				amount := cfg.draw()
				if err := nw.AddEdge(i, j, amount); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, %d): %w", methodRandomSparse, i, j, amount, err)
				}
			}
		}

		return nil
	}
}
