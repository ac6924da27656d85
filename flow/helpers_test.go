package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/network"
)

// arc is a compact edge literal for fixtures.
type arc struct {
	from, to int
	cap      float64
}

// mustNetwork builds an n-node network from arcs or fails the test.
func mustNetwork(t *testing.T, n int, arcs ...arc) *network.Network {
	t.Helper()
	g, err := network.New(n)
	require.NoError(t, err)
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.from, a.to, a.cap))
	}

	return g
}

// clrsNetwork is the classic six-node textbook instance with max flow 23.
func clrsNetwork(t *testing.T) *network.Network {
	return mustNetwork(t, 6,
		arc{0, 1, 16}, arc{0, 2, 13},
		arc{1, 2, 10}, arc{1, 3, 12},
		arc{2, 1, 4}, arc{2, 4, 14},
		arc{3, 2, 9}, arc{3, 5, 20},
		arc{4, 3, 7}, arc{4, 5, 4},
	)
}

// assertResidualIntegrity verifies, for every ordered pair (u,v), that
//
//	original(u,v) + original(v,u) == residual(u,v) + residual(v,u)
//
// i.e. every push moved capacity between the two cells of a pair and
// nothing was created or lost.
func assertResidualIntegrity(t *testing.T, g *network.Network, res *flow.Result) {
	t.Helper()
	n := g.Size()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			cuv, _ := g.Capacity(u, v)
			cvu, _ := g.Capacity(v, u)
			require.InDelta(t, cuv+cvu, res.Residual(u, v)+res.Residual(v, u), 1e-9,
				"pair (%d,%d)", u, v)
			require.GreaterOrEqual(t, res.Residual(u, v), 0.0)
			require.GreaterOrEqual(t, res.Residual(v, u), 0.0)
		}
	}
}

// bruteForceMinCut enumerates every partition with source on one side and
// sink on the other and returns the smallest crossing capacity.
// Exponential in N; fixtures keep N ≤ 12.
func bruteForceMinCut(g *network.Network, source, sink int) float64 {
	n := g.Size()
	best := -1.0
	for mask := 0; mask < 1<<n; mask++ {
		if mask&(1<<source) == 0 || mask&(1<<sink) != 0 {
			continue
		}
		var c float64
		for _, e := range g.Edges() {
			if mask&(1<<e.From) != 0 && mask&(1<<e.To) == 0 {
				c += e.Capacity
			}
		}
		if best < 0 || c < best {
			best = c
		}
	}

	return best
}
