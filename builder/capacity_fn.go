package builder

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// DefaultCapacity is returned by the random CapacityFns when no RNG is
// available (p ∈ {0,1} runs without a seed).
const DefaultCapacity float64 = 1

// CapacityFn produces an edge capacity given an optional *rand.Rand source.
// It must be deterministic for a given RNG state and never return a
// negative or non-finite value.
type CapacityFn func(rng *rand.Rand) float64

// ConstantCapacityFn returns a CapacityFn that always yields value.
// Panics if value < 0 or value is not finite.
func ConstantCapacityFn(value float64) CapacityFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantCapacityFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformCapacityFn samples uniformly in [min, max).
// Panics if min < 0 or max < min. With a nil RNG it yields DefaultCapacity.
func UniformCapacityFn(min, max float64) CapacityFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCapacityFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCapacity
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// UniformIntCapacityFn samples an integer uniformly in [min, max].
// UniformIntCapacityFn(1, 20) reproduces the 1..20 capacities of the
// interactive demo. Panics if min < 0 or max < min. With a nil RNG it
// yields DefaultCapacity.
func UniformIntCapacityFn(min, max int) CapacityFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntCapacityFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCapacity
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// ExponentialCapacityFn samples Exp(rate) rounded to the nearest integer,
// which yields the heavy-tailed bottlenecks used in stress benchmarks.
// Panics if rate ≤ 0. With a nil RNG it yields DefaultCapacity.
func ExponentialCapacityFn(rate float64) CapacityFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialCapacityFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCapacity
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}
