// SPDX-License-Identifier: MIT
// Package: splitflow/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn        ("0","1","2",...)
//   • rng      = nil                (pure/deterministic unless seeded)
//   • amountFn = constant defaultAmount

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Participant naming: index -> name. Used by BuildLedger only.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Amount generator in minor units; must return values > 0.
	amountFn AmountFn
}

const (
	defaultAmount = int64(100) // one major unit at two decimal places
	minVertices   = 1
)

// newBuilderConfig applies opts in order (last wins) over the defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		amountFn: ConstantAmountFn(defaultAmount),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// draw returns the next edge amount, never below 1.
func (c builderConfig) draw() int64 {
	if a := c.amountFn(c.rng); a > 0 {
		return a
	}
	return 1
}
