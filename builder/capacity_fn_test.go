// Package builder_test contains unit tests for the CapacityFn
// implementations, covering both correct behavior and panic conditions.
package builder_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/maxflow/builder"
)

// TestCapacityFnConstructors verifies that CapacityFn constructors panic
// on invalid parameters according to their documented contracts.
func TestCapacityFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.CapacityFn
	}{
		{"ConstantCapacityFn_negative", func() builder.CapacityFn { return builder.ConstantCapacityFn(-1) }},
		{"UniformCapacityFn_minNegative", func() builder.CapacityFn { return builder.UniformCapacityFn(-1, 5) }},
		{"UniformCapacityFn_maxLessThanMin", func() builder.CapacityFn { return builder.UniformCapacityFn(5, 4) }},
		{"UniformIntCapacityFn_maxLessThanMin", func() builder.CapacityFn { return builder.UniformIntCapacityFn(3, 2) }},
		{"ExponentialCapacityFn_zeroRate", func() builder.CapacityFn { return builder.ExponentialCapacityFn(0) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() {
				tc.constructor()
			}, tc.name)
		})
	}
}

// TestCapacityFnBehavior covers the runtime behavior of each CapacityFn:
//   - ConstantCapacityFn returns the fixed value.
//   - Uniform* return DefaultCapacity on nil RNG and stay within range.
//   - ExponentialCapacityFn returns non-negative integral samples.
func TestCapacityFnBehavior(t *testing.T) {
	t.Parallel()

	const seed = 42
	rng := rand.New(rand.NewSource(seed))

	const constVal = 7.0
	fnConst := builder.ConstantCapacityFn(constVal)
	if c := fnConst(nil); c != constVal {
		t.Errorf("ConstantCapacityFn(nil): expected %g, got %g", constVal, c)
	}
	if c := fnConst(rng); c != constVal {
		t.Errorf("ConstantCapacityFn(rng): expected %g, got %g", constVal, c)
	}

	fnUni := builder.UniformCapacityFn(3, 3)
	if c := fnUni(nil); c != builder.DefaultCapacity {
		t.Errorf("UniformCapacityFn(nil RNG): expected default %g, got %g", builder.DefaultCapacity, c)
	}
	if c := fnUni(rng); c != 3 {
		t.Errorf("UniformCapacityFn(3,3): expected 3, got %g", c)
	}

	fnInt := builder.UniformIntCapacityFn(1, 20)
	for i := 0; i < 200; i++ {
		c := fnInt(rng)
		if c < 1 || c > 20 || c != float64(int(c)) {
			t.Fatalf("UniformIntCapacityFn(1,20): got %g", c)
		}
	}

	fnExp := builder.ExponentialCapacityFn(1.5)
	if c := fnExp(nil); c != builder.DefaultCapacity {
		t.Errorf("ExponentialCapacityFn(nil RNG): expected default %g, got %g", builder.DefaultCapacity, c)
	}
	if c := fnExp(rng); c < 0 {
		t.Errorf("ExponentialCapacityFn: expected non-negative, got %g", c)
	}
}

// assertPanics fails t unless fn panics.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
