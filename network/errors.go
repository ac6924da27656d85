// SPDX-License-Identifier: MIT
// Package: maxflow/network
//
// errors.go - sentinel errors for the capacitated graph model.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Detection sites attach context with %w (endpoint values, capacity).
//   - Every failing call leaves the Network exactly as it was.

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned by New when the node count is not positive.
	ErrInvalidSize = errors.New("network: node count must be > 0")

	// ErrInvalidEdge is returned by AddEdge for an out-of-range endpoint,
	// a self-loop, or a negative / non-finite capacity.
	ErrInvalidEdge = errors.New("network: invalid edge")

	// ErrOutOfRange is returned by read accessors for an index outside [0,N).
	ErrOutOfRange = errors.New("network: index out of range")

	// ErrInvalidLabel is returned by NewLabeled for empty or repeated labels.
	ErrInvalidLabel = errors.New("network: invalid node label")
)

// edgeErrorf wraps ErrInvalidEdge with the offending insertion.
func edgeErrorf(from, to int, capacity float64, reason string) error {
	return fmt.Errorf("AddEdge(%d,%d,%g): %s: %w", from, to, capacity, reason, ErrInvalidEdge)
}
