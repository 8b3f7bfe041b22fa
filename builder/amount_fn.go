package builder

import (
	"fmt"
	"math/rand"
)

// AmountFn produces an edge amount in minor units given an optional RNG.
// It must be deterministic for a given RNG state.
type AmountFn func(rng *rand.Rand) int64

// ConstantAmountFn always yields amount. Panics if amount <= 0.
func ConstantAmountFn(amount int64) AmountFn {
	if amount <= 0 {
		panic(fmt.Sprintf("ConstantAmountFn: amount must be > 0, got %d", amount))
	}
	return func(_ *rand.Rand) int64 {
		return amount
	}
}

// UniformAmountFn samples uniformly in [lo, hi]. Panics unless 0 < lo <= hi.
// With a nil rng it yields lo.
func UniformAmountFn(lo, hi int64) AmountFn {
	if lo <= 0 || hi < lo {
		panic(fmt.Sprintf("UniformAmountFn: require 0 < lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}
