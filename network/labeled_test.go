package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/network"
)

func TestLabeledBijection(t *testing.T) {
	l, err := network.NewLabeled([]string{"s", "a", "t"})
	require.NoError(t, err)

	for i, name := range []string{"s", "a", "t"} {
		idx, ok := l.Index(name)
		require.True(t, ok)
		assert.Equal(t, i, idx)
		assert.Equal(t, name, l.Label(i))
	}
	_, ok := l.Index("x")
	assert.False(t, ok)
	assert.Equal(t, "", l.Label(3))
	assert.Equal(t, []string{"t", "s"}, l.Labels([]int{2, 0}))
}

func TestLabeledAddEdge(t *testing.T) {
	l, err := network.NewLabeled([]string{"s", "t"})
	require.NoError(t, err)
	require.NoError(t, l.AddEdge("s", "t", 3))

	c, err := l.Network().Capacity(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c)

	err = l.AddEdge("s", "nowhere", 1)
	assert.True(t, errors.Is(err, network.ErrInvalidEdge))
	err = l.AddEdge("s", "s", 1)
	assert.True(t, errors.Is(err, network.ErrInvalidEdge), "self-loop by label")
}

func TestNewLabeledInvalid(t *testing.T) {
	_, err := network.NewLabeled(nil)
	assert.True(t, errors.Is(err, network.ErrInvalidSize))

	_, err = network.NewLabeled([]string{"a", ""})
	assert.True(t, errors.Is(err, network.ErrInvalidLabel))

	_, err = network.NewLabeled([]string{"a", "b", "a"})
	assert.True(t, errors.Is(err, network.ErrInvalidLabel))
}

func TestNewLabeledPassesOptions(t *testing.T) {
	l, err := network.NewLabeled([]string{"a", "b"}, network.WithDuplicatePolicy(network.DuplicateSum))
	require.NoError(t, err)
	require.NoError(t, l.AddEdge("a", "b", 1))
	require.NoError(t, l.AddEdge("a", "b", 2))

	c, _ := l.Network().Capacity(0, 1)
	assert.Equal(t, 3.0, c)
}
