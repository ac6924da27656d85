package flow_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/maxflow/builder"
	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/network"
)

// BenchmarkFlowAlgorithms measures Edmonds–Karp and Dinic on random and grid
// networks of increasing size. Networks are built once per case so only the
// engine is timed.
func BenchmarkFlowAlgorithms(b *testing.B) {
	cases := []struct {
		name  string
		build func() (*network.Labeled, error)
	}{
		{"Random50", func() (*network.Labeled, error) {
			return builder.RandomNetwork(50, 0.1, builder.WithSeed(42))
		}},
		{"Random200", func() (*network.Labeled, error) {
			return builder.RandomNetwork(200, 0.05, builder.WithSeed(4242), builder.WithCapacityRange(1, 50))
		}},
		{"Grid10x10", func() (*network.Labeled, error) {
			return builder.GridNetwork(10, 10, builder.WithSeed(7))
		}},
		{"Bipartite60", func() (*network.Labeled, error) {
			return builder.BipartiteNetwork(60, 60, 0.1, builder.WithSeed(9))
		}},
	}

	ctx := context.Background()
	for _, tc := range cases {
		ln, err := tc.build()
		if err != nil {
			b.Fatalf("%s: %v", tc.name, err)
		}
		g := ln.Network()
		sink := g.Size() - 1

		b.Run(tc.name+"/EdmondsKarp", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := flow.EdmondsKarp(ctx, g, 0, sink, flow.WithTrace(false)); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(tc.name+"/Dinic", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := flow.Dinic(ctx, g, 0, sink, flow.WithTrace(false)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
