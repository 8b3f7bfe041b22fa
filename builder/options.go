// SPDX-License-Identifier: MIT
// Package: splitflow/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the participant naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmountFn overrides the per-edge amount generator. Panics on nil.
func WithAmountFn(fn AmountFn) BuilderOption {
	if fn == nil {
		panic("builder: WithAmountFn(nil)")
	}
	return func(c *builderConfig) {
		c.amountFn = fn
	}
}

// WithConstantAmount gives every edge the same amount in minor units.
func WithConstantAmount(amount int64) BuilderOption {
	return WithAmountFn(ConstantAmountFn(amount))
}

// WithUniformAmount draws amounts uniformly from [lo, hi] minor units.
func WithUniformAmount(lo, hi int64) BuilderOption {
	return WithAmountFn(UniformAmountFn(lo, hi))
}
