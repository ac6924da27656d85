// SPDX-License-Identifier: MIT

// Package network - dense capacitated graph model.
//
// Purpose:
//   - Hold the capacity relation of a fixed node set 0..N-1 in a row-major
//     N×N buffer (offset = u*N + v) for O(1) reads and writes.
//   - Keep an insertion-ordered edge list with the capacities as recorded,
//     independent of any residual state a flow engine derives later.
//   - Apply a single, explicit duplicate-edge policy (see options.go).
//
// Invariants:
//   - every cell is finite and ≥ 0;
//   - the diagonal is never written;
//   - the edge list holds exactly one entry per ordered pair ever inserted.
//
// Complexity quicksheet:
//   - New: O(N²) zero-init; AddEdge/Capacity: O(1); Clone/Matrix: O(N² + E).

package network

import (
	"fmt"
	"math"
	"strings"
)

// Formatting literals used by String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Edge is one inserted arc with the capacity recorded for it.
type Edge struct {
	From     int
	To       int
	Capacity float64
}

// pairKey is an ordered pair (u,v) used to find the edge-list entry of an arc.
type pairKey struct {
	u int // tail
	v int // head
}

// Network is a directed graph over nodes 0..N-1 with non-negative capacities.
// The zero value is not usable; construct with New.
type Network struct {
	n        int             // node count (> 0)
	capacity []float64       // row-major N×N buffer
	edges    []Edge          // insertion order, recorded capacities
	index    map[pairKey]int // ordered pair -> position in edges
	policy   DuplicatePolicy // resolved from Options
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Network)(nil)

// New allocates a Network with n nodes and no edges.
//
// Errors:
//   - ErrInvalidSize if n ≤ 0.
//
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Network, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	o := gatherOptions(opts...)

	return &Network{
		n:        n,
		capacity: make([]float64, n*n),
		index:    make(map[pairKey]int),
		policy:   o.duplicates,
	}, nil
}

// Size returns the node count N.
func (g *Network) Size() int {
	return g.n
}

// Policy returns the duplicate-edge policy the Network was built with.
func (g *Network) Policy() DuplicatePolicy {
	return g.policy
}

// AddEdge records capacity on the arc from→to.
//
// Preconditions (violations return ErrInvalidEdge and change nothing):
//   - 0 ≤ from, to < N and from ≠ to;
//   - capacity is finite and ≥ 0.
//
// When the ordered pair was inserted before, the DuplicatePolicy decides:
//   - DuplicateIgnore: takes effect only while the recorded capacity is 0,
//     otherwise the call is a silent no-op;
//   - DuplicateOverwrite: the new capacity replaces the old one;
//   - DuplicateSum: the capacities are added.
//
// The edge list never gains a second entry for the same pair; the existing
// entry follows the cell. No reverse arc is created.
func (g *Network) AddEdge(from, to int, capacity float64) error {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return edgeErrorf(from, to, capacity, fmt.Sprintf("endpoint outside [0,%d)", g.n))
	}
	if from == to {
		return edgeErrorf(from, to, capacity, "self-loop")
	}
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return edgeErrorf(from, to, capacity, "capacity not finite")
	}
	if capacity < 0 {
		return edgeErrorf(from, to, capacity, "negative capacity")
	}

	off := from*g.n + to
	key := pairKey{u: from, v: to}
	pos, seen := g.index[key]
	if !seen {
		g.capacity[off] = capacity
		g.index[key] = len(g.edges)
		g.edges = append(g.edges, Edge{From: from, To: to, Capacity: capacity})

		return nil
	}

	next := g.capacity[off]
	switch g.policy {
	case DuplicateIgnore:
		if next != 0 {
			return nil
		}
		next = capacity
	case DuplicateOverwrite:
		next = capacity
	case DuplicateSum:
		next += capacity
		if math.IsInf(next, 0) {
			return edgeErrorf(from, to, capacity, "summed capacity overflows")
		}
	}
	g.capacity[off] = next
	g.edges[pos].Capacity = next

	return nil
}

// Capacity returns the recorded capacity of from→to (0 when absent).
//
// Errors:
//   - ErrOutOfRange if either index is outside [0,N).
func (g *Network) Capacity(from, to int) (float64, error) {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return 0, fmt.Errorf("Capacity(%d,%d): %w", from, to, ErrOutOfRange)
	}

	return g.capacity[from*g.n+to], nil
}

// HasEdge reports whether from→to was ever inserted (even with capacity 0).
func (g *Network) HasEdge(from, to int) bool {
	_, ok := g.index[pairKey{u: from, v: to}]

	return ok
}

// Edges returns a copy of the edge list in insertion order.
func (g *Network) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Matrix returns a copy of the row-major capacity buffer (len N*N).
// Flow engines seed their residual state from it.
func (g *Network) Matrix() []float64 {
	out := make([]float64, len(g.capacity))
	copy(out, g.capacity)

	return out
}

// Clone returns an independent deep copy (buffer, edge list and policy).
func (g *Network) Clone() *Network {
	index := make(map[pairKey]int, len(g.index))
	for k, v := range g.index {
		index[k] = v
	}

	return &Network{
		n:        g.n,
		capacity: g.Matrix(),
		edges:    g.Edges(),
		index:    index,
		policy:   g.policy,
	}
}

// String renders the capacity matrix one row per line.
func (g *Network) String() string {
	var sb strings.Builder
	for i := 0; i < g.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < g.n; j++ {
			fmt.Fprintf(&sb, "%g", g.capacity[i*g.n+j])
			if j < g.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
