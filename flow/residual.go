package flow

import (
	"math"

	"github.com/katalvlaran/maxflow/network"
)

// noParent marks a node not yet discovered by the current search.
const noParent = -1

// residual is the private, mutable state of one flow computation: the
// residual capacity matrix seeded from the network, plus the per-search
// parent map and queue (reused across phases to avoid reallocation).
//
// Forward pushes decrease cap[u][v] and increase cap[v][u]; pre-existing
// antiparallel arcs and flow-created reverse capacity share the same cell.
type residual struct {
	n      int
	eps    float64
	cap    []float64 // row-major N×N, every cell ≥ 0
	parent []int     // BFS predecessor; parent[source] == source
	queue  []int     // FIFO buffer
}

// newResidual seeds residual state from buf (taken over, not copied).
func newResidual(buf []float64, n int, eps float64) *residual {
	return &residual{
		n:      n,
		eps:    eps,
		cap:    buf,
		parent: make([]int, n),
		queue:  make([]int, 0, n),
	}
}

// search runs breadth-first search from source over arcs whose residual
// capacity exceeds eps. A node's parent is fixed the first time it is
// discovered, so the chain to sink has the fewest arcs of any augmenting
// path. Returns true as soon as sink is discovered.
//
// Complexity: O(V²) on the dense matrix.
func (r *residual) search(source, sink int) bool {
	for i := range r.parent {
		r.parent[i] = noParent
	}
	r.parent[source] = source
	r.queue = append(r.queue[:0], source)

	for head := 0; head < len(r.queue); head++ {
		u := r.queue[head]
		row := r.cap[u*r.n : (u+1)*r.n]
		for v, c := range row {
			if r.parent[v] != noParent || c <= r.eps {
				continue
			}
			r.parent[v] = u
			if v == sink {
				return true
			}
			r.queue = append(r.queue, v)
		}
	}

	return false
}

// bottleneck walks the parent chain sink→source once and returns the
// smallest residual capacity on it. Requires a successful search.
func (r *residual) bottleneck(source, sink int) float64 {
	f := math.Inf(1)
	for v := sink; v != source; v = r.parent[v] {
		u := r.parent[v]
		f = math.Min(f, r.cap[u*r.n+v])
	}

	return f
}

// augment walks the parent chain a second time and pushes f along it:
// forward cells lose f, reverse cells gain f.
func (r *residual) augment(source, sink int, f float64) {
	for v := sink; v != source; v = r.parent[v] {
		u := r.parent[v]
		r.push(u, v, f)
	}
}

// push moves f units across u→v. The forward cell is clamped at zero so
// floating-point round-off never produces a negative capacity.
func (r *residual) push(u, v int, f float64) {
	fwd := u*r.n + v
	r.cap[fwd] -= f
	if r.cap[fwd] < 0 {
		r.cap[fwd] = 0
	}
	r.cap[v*r.n+u] += f
}

// path materialises the parent chain as source→…→sink.
func (r *residual) path(source, sink int) []int {
	var rev []int
	for v := sink; v != source; v = r.parent[v] {
		rev = append(rev, v)
	}
	rev = append(rev, source)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// reachable marks every node reachable from source over arcs with
// residual capacity above eps.
func reachable(buf []float64, n int, eps float64, source int) []bool {
	seen := make([]bool, n)
	seen[source] = true
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for v := 0; v < n; v++ {
			if !seen[v] && buf[u*n+v] > eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// newResult snapshots g so the Result stays valid if the caller later
// mutates the network.
func newResult(g *network.Network, source, sink int, eps float64) *Result {
	edges := g.Edges()
	recs := make([]edgeRecord, len(edges))
	for i, e := range edges {
		recs[i] = edgeRecord{from: e.From, to: e.To, capacity: e.Capacity}
	}

	return &Result{
		MinBottleneck: math.Inf(1),
		source:        source,
		sink:          sink,
		n:             g.Size(),
		eps:           eps,
		edges:         recs,
		original:      g.Matrix(),
		residual:      g.Matrix(),
	}
}
