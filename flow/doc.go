// Package flow computes maximum s–t flows on a *network.Network.
//
// The primary engine is Edmonds–Karp (shortest augmenting paths):
//
//   - Method: breadth-first search over arcs with positive residual capacity
//     finds an augmenting path with the fewest arcs; its bottleneck is pushed
//     (forward residual decreases, reverse residual increases).
//   - Time:   O(V·E) augmentations; each BFS is O(V²) on the dense matrix.
//   - Memory: O(V²) for the private residual matrix.
//
// Dinic (level graph + blocking flow) runs on the same residual
// representation and reports its DFS pushes as augmentations, which makes it
// a drop-in cross-check.
//
// # API
//
//	func EdmondsKarp(ctx context.Context, g *network.Network, source, sink int, opts ...Option) (*Result, error)
//	func Dinic(ctx context.Context, g *network.Network, source, sink int, opts ...Option) (*Result, error)
//	func Augmentations(ctx context.Context, g *network.Network, source, sink int, opts ...Option) iter.Seq2[Augmentation, error]
//	func Verify(res *Result) error
//
// Engines are pure: g is never modified and no state survives between
// calls, so independent calls may run concurrently on the same network.
//
// Result carries MaxFlow, MinBottleneck (+Inf until the first augmentation;
// Bottleneck reports "no flow" explicitly), the ordered augmenting paths,
// and read-only views of the final state: Flow, Residual and MinCut.
//
// # Progress
//
// Callers that animate or log progress observe one Augmentation per
// completed push, either through WithOnAugment or by ranging over
// Augmentations. Both fire only between phases, when the residual matrix is
// consistent. Pacing belongs to the caller; the engine never sleeps.
//
// # Limits
//
// A deadline on ctx or WithMaxAugmentations stops the engine early. The
// partial Result is returned with Incomplete == true next to the error, so
// MaxFlow is still usable as a lower bound.
//
// # Errors
//
//	ErrNilNetwork        - nil network.
//	ErrInvalidEndpoints  - source or sink outside [0,N).
//	ErrOptionViolation   - negative epsilon / limits.
//	ErrAugmentationLimit - cap reached with an augmenting path remaining.
//	ErrVerify            - returned by Verify.
//	context.Canceled / context.DeadlineExceeded - wrapped, with a partial Result.
package flow
