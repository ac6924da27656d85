// Package network implements the capacitated graph model consumed by the
// flow engine.
//
// A Network is a fixed set of N nodes (0..N-1) with a dense N×N capacity
// matrix and an insertion-ordered edge list:
//
//	g, _ := network.New(4)
//	_ = g.AddEdge(0, 1, 16)
//	_ = g.AddEdge(0, 1, 99) // ignored: capacity already recorded for 0→1
//
// Repeated insertions between the same ordered pair follow a DuplicatePolicy
// chosen at construction (WithDuplicatePolicy): ignore (default), overwrite
// or sum. AddEdge never creates the reverse arc; the flow engine derives
// reverse residual capacity on its own private copy of the matrix.
//
// Labeled adds a label↔index bijection for callers that name their nodes.
//
// # Errors
//
//	ErrInvalidSize  - New with N ≤ 0.
//	ErrInvalidEdge  - out-of-range endpoint, self-loop, negative or non-finite capacity.
//	ErrOutOfRange   - Capacity read outside [0,N).
//	ErrInvalidLabel - empty or repeated label in NewLabeled.
package network
