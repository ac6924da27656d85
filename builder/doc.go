// Package builder produces flow networks for tests, benchmarks and the
// command-line harness.
//
// Four sources are supported:
//
//   - RandomNetwork(n, p, opts...): every ordered pair (i,j), i ≠ j, gets an
//     edge with probability p. Capacities come from a CapacityFn; the default
//     draws integers uniformly from [1,20]. Randomness is explicit: pass
//     WithSeed or WithRand, otherwise only p ∈ {0,1} is accepted.
//   - GridNetwork(rows, cols, opts...): the grid benchmark, with "s" feeding
//     the first column and the last column draining into "t".
//   - BipartiteNetwork(n1, n2, p, opts...): unit-capacity matching network;
//     its maximum flow is the maximum matching size.
//   - ReadEdgeList(r, opts...): "from to capacity" lines with '#' comments.
//     WriteEdgeList emits the same format.
//
// Both return a *network.Labeled so callers can name the source and sink.
// Labels for random networks come from an IDFn (DefaultIDFn, PrefixIDFn,
// ExcelColumnIDFn).
//
// Option constructors that can only be misused by a programmer panic
// (WithRand(nil), WithCapacityFn(nil), invalid CapacityFn parameters).
// Everything that may come from user input is reported as an error wrapping
// one of the sentinels in errors.go.
//
// Determinism: identical options and seed give an identical network,
// including the edge insertion order.
package builder
