package builder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/builder"
	"github.com/katalvlaran/maxflow/flow"
)

func TestGridNetwork(t *testing.T) {
	ln, err := builder.GridNetwork(2, 3, builder.WithCapacityFn(builder.ConstantCapacityFn(1)))
	require.NoError(t, err)

	g := ln.Network()
	require.Equal(t, 2*3+2, g.Size())
	require.Len(t, g.Edges(), 4+8+6) // terminals, horizontal pairs, vertical pairs
	require.Equal(t, builder.SourceLabel, ln.Label(0))
	require.Equal(t, "1,2", ln.Label(6))
	require.Equal(t, builder.SinkLabel, ln.Label(7))
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 1), "neighbours are joined both ways")

	res, err := flow.EdmondsKarp(context.Background(), g, 0, g.Size()-1)
	require.NoError(t, err)
	require.Equal(t, 2.0, res.MaxFlow, "one unit per row leaves the source")
}

func TestGridNetworkErrors(t *testing.T) {
	_, err := builder.GridNetwork(0, 3)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.GridNetwork(2, 2, builder.WithCapacityRange(-1, 2))
	require.ErrorIs(t, err, builder.ErrInvalidCapacityRange)
}

func TestBipartiteNetwork(t *testing.T) {
	ln, err := builder.BipartiteNetwork(3, 2, 1, builder.WithPartitionPrefix("w", "j"))
	require.NoError(t, err)

	g := ln.Network()
	require.Equal(t, 3+2+2, g.Size())
	require.Len(t, g.Edges(), 3+3*2+2)
	_, ok := ln.Index("w2")
	require.True(t, ok)
	_, ok = ln.Index("j1")
	require.True(t, ok)

	res, err := flow.EdmondsKarp(context.Background(), g, 0, g.Size()-1)
	require.NoError(t, err)
	require.Equal(t, 2.0, res.MaxFlow, "matching limited by the smaller side")
}

func TestBipartiteNetworkErrors(t *testing.T) {
	_, err := builder.BipartiteNetwork(0, 2, 0.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BipartiteNetwork(2, 2, 2, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BipartiteNetwork(2, 2, 0.5)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}
