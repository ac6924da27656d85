// SPDX-License-Identifier: MIT
// Package: maxflow/builder
//
// bipartite.go — BipartiteNetwork(n1, n2, p): unit-capacity matching network.
//
// Layout: "s", left nodes L0..L{n1-1}, right nodes R0..R{n2-1}, "t".
// s→Li and Rj→t carry capacity 1; each Li→Rj exists with probability p and
// capacity 1. The maximum s–t flow equals the maximum matching size.

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxflow/network"
)

const (
	methodBipartite    = "BipartiteNetwork"
	minPartitionSize   = 1
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// BipartiteNetwork builds the matching network for a random bipartite graph.
// The capacity options are ignored; all arcs have capacity 1.
func BipartiteNetwork(n1, n2 int, p float64, opts ...Option) (*network.Labeled, error) {
	cfg := newBuilderConfig(opts...)
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return nil, builderErrorf(methodBipartite, "n1=%d, n2=%d (each must be ≥ %d): %w",
			n1, n2, minPartitionSize, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, builderErrorf(methodBipartite, "p=%.6f not in [%.1f,%.1f]: %w",
			p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, builderErrorf(methodBipartite, "rng is required: %w", ErrNeedRandSource)
	}

	labels := make([]string, 0, n1+n2+2)
	labels = append(labels, SourceLabel)
	for i := 0; i < n1; i++ {
		labels = append(labels, fmt.Sprintf("%s%d", cfg.leftPrefix, i))
	}
	for j := 0; j < n2; j++ {
		labels = append(labels, fmt.Sprintf("%s%d", cfg.rightPrefix, j))
	}
	labels = append(labels, SinkLabel)
	sink := len(labels) - 1

	ln, err := network.NewLabeled(labels, cfg.netOpts...)
	if err != nil {
		return nil, builderErrorf(methodBipartite, "%w", err)
	}
	g := ln.Network()

	for i := 0; i < n1; i++ {
		if err := g.AddEdge(0, 1+i, 1); err != nil {
			return nil, builderErrorf(methodBipartite, "%w", err)
		}
	}
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			if p < probMax && (p == probMin || cfg.rng.Float64() >= p) {
				continue
			}
			if err := g.AddEdge(1+i, 1+n1+j, 1); err != nil {
				return nil, builderErrorf(methodBipartite, "%w", err)
			}
		}
	}
	for j := 0; j < n2; j++ {
		if err := g.AddEdge(1+n1+j, sink, 1); err != nil {
			return nil, builderErrorf(methodBipartite, "%w", err)
		}
	}

	return ln, nil
}
