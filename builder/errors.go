// SPDX-License-Identifier: MIT
// Package: maxflow/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w, never by formatting
//     the sentinel itself.
//   • Builders never panic at runtime; validation panics are confined to
//     option and CapacityFn constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is below the minimum a constructor
// accepts (RandomNetwork needs a distinct source and sink).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without WithSeed / WithRand while 0 < p < 1.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidCapacityRange indicates WithCapacityRange(min, max) with
// min < 0 or max < min.
var ErrInvalidCapacityRange = errors.New("builder: invalid capacity range")

// ErrSyntax indicates a malformed line in an edge-list stream. The wrapped
// message carries the 1-based line number.
var ErrSyntax = errors.New("builder: edge list syntax error")

// builderErrorf prefixes a formatted message with the method name.
// Use %w in format to keep a sentinel reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
