// SPDX-License-Identifier: MIT
// Package: splitflow/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Path: n=1 < min=2: ...").
//   • Constructors never panic; option constructors may.

package builder

import "errors"

// ErrTooFewVertices indicates the network is smaller than the constructor
// requires (e.g. Path needs 2 vertices, Cycle needs 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not complete, e.g. a nil
// constructor or a rejected edge.
var ErrConstructFailed = errors.New("builder: construction failed")
