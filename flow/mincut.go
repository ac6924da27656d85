package flow

import (
	"sort"

	"github.com/katalvlaran/maxflow/network"
)

// Cut is an s–t cut read off the final residual network.
//
//   - Source: nodes reachable from the source over residual arcs, ascending.
//   - Edges: original arcs leaving Source, in insertion order.
//   - Capacity: sum of their capacities.
type Cut struct {
	Source   []int
	Edges    []network.Edge
	Capacity float64
}

// MinCut returns the cut separating the nodes still reachable from the
// source in the final residual network from the rest. For a complete
// Result its Capacity equals MaxFlow (max-flow/min-cut theorem); for an
// Incomplete one it is merely some cut and no such equality holds.
//
// Complexity: O(V² + E).
func (r *Result) MinCut() Cut {
	side := reachable(r.residual, r.n, r.eps, r.source)

	var cut Cut
	for v, in := range side {
		if in {
			cut.Source = append(cut.Source, v)
		}
	}
	sort.Ints(cut.Source)

	for _, e := range r.edges {
		if side[e.from] && !side[e.to] {
			cut.Edges = append(cut.Edges, network.Edge{From: e.from, To: e.to, Capacity: e.capacity})
			cut.Capacity += e.capacity
		}
	}

	return cut
}
