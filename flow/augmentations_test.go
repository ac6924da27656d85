package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/flow"
)

func TestAugmentationsYieldsTrace(t *testing.T) {
	g := clrsNetwork(t)
	want, err := flow.EdmondsKarp(context.Background(), g, 0, 5)
	require.NoError(t, err)

	var got []flow.Augmentation
	for a, err := range flow.Augmentations(context.Background(), g, 0, 5) {
		require.NoError(t, err)
		got = append(got, a)
	}
	require.Equal(t, want.Paths, got)
}

func TestAugmentationsEarlyBreak(t *testing.T) {
	n := 0
	for _, err := range flow.Augmentations(context.Background(), clrsNetwork(t), 0, 5) {
		require.NoError(t, err)
		n++
		break
	}
	require.Equal(t, 1, n, "breaking must stop the engine without a trailing error")
}

func TestAugmentationsYieldsTerminalError(t *testing.T) {
	var errs []error
	for _, err := range flow.Augmentations(context.Background(), clrsNetwork(t), 0, 9) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], flow.ErrInvalidEndpoints)

	var flows []float64
	var last error
	for a, err := range flow.Augmentations(context.Background(), clrsNetwork(t), 0, 5,
		flow.WithMaxAugmentations(2)) {
		if err != nil {
			last = err
			continue
		}
		flows = append(flows, a.Flow)
	}
	require.Equal(t, []float64{12, 4}, flows)
	require.ErrorIs(t, last, flow.ErrAugmentationLimit)
}
