// SPDX-License-Identifier: MIT
// Package: maxflow/builder
//
// random.go — RandomNetwork(n, p): Erdős–Rényi-like directed flow network.
//
// Contract:
//   - n ≥ 2 (source and sink must differ), else ErrTooFewVertices.
//   - 0 ≤ p ≤ 1, else ErrInvalidProbability.
//   - An RNG is required when 0 < p < 1, else ErrNeedRandSource.
//   - Labels come from cfg.idFn in ascending index order (0..n-1).
//   - Every ordered pair (i,j), i ≠ j, is tried once in i-asc, j-asc order;
//     a hit inserts i→j with capacity cfg.capacityFn(rng).
//
// Complexity: O(n²) Bernoulli trials, O(n²) memory for the dense network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxflow/network"
)

const (
	methodRandomNetwork      = "RandomNetwork"
	minRandomNetworkVertices = 2
	probMin                  = 0.0
	probMax                  = 1.0
)

// RandomNetwork samples a directed network over n nodes where each ordered
// pair is connected independently with probability p. The same options and
// seed always produce the same network.
func RandomNetwork(n int, p float64, opts ...Option) (*network.Labeled, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, builderErrorf(methodRandomNetwork, "%w", cfg.err)
	}
	if n < minRandomNetworkVertices {
		return nil, builderErrorf(methodRandomNetwork, "n=%d < min=%d: %w",
			n, minRandomNetworkVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, builderErrorf(methodRandomNetwork, "p=%.6f not in [%.1f,%.1f]: %w",
			p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, builderErrorf(methodRandomNetwork, "rng is required: %w", ErrNeedRandSource)
	}

	labels := make([]string, n)
	for i := range labels {
		labels[i] = cfg.idFn(i)
	}
	ln, err := network.NewLabeled(labels, cfg.netOpts...)
	if err != nil {
		return nil, builderErrorf(methodRandomNetwork, "%w", err)
	}
	g := ln.Network()

	if p == probMin {
		return ln, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// p == 1 needs no draw; the trial order stays fixed either way.
			if p < probMax && cfg.rng.Float64() >= p {
				continue
			}
			c := cfg.capacityFn(cfg.rng)
			if err := g.AddEdge(i, j, c); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRandomNetwork, err)
			}
		}
	}

	return ln, nil
}
