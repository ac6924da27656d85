// SPDX-License-Identifier: MIT
// Package: maxflow/builder
//
// grid.go — GridNetwork(rows, cols): the classic grid flow benchmark.
//
// Layout:
//   - node "s" (index 0), cells "r,c" in row-major order, node "t" (last);
//   - s→(r,0) and (r,cols-1)→t for every row;
//   - both directions between horizontally and vertically adjacent cells,
//     so every interior arc has an antiparallel partner.
//
// Capacities come from cfg.capacityFn; terminal arcs included.
// Complexity: O(rows·cols) edges, O((rows·cols)²) dense memory.

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxflow/network"
)

const (
	methodGrid  = "GridNetwork"
	minGridDim  = 1
	gridIDFmt   = "%d,%d" // "r,c"
	SourceLabel = "s"
	SinkLabel   = "t"
)

// GridNetwork builds a rows×cols grid between SourceLabel and SinkLabel.
// The RNG is optional; without one the random CapacityFns yield
// DefaultCapacity and the grid is uniform.
func GridNetwork(rows, cols int, opts ...Option) (*network.Labeled, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, builderErrorf(methodGrid, "%w", cfg.err)
	}
	if rows < minGridDim || cols < minGridDim {
		return nil, builderErrorf(methodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}

	cell := func(r, c int) int { return 1 + r*cols + c }
	labels := make([]string, 0, rows*cols+2)
	labels = append(labels, SourceLabel)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			labels = append(labels, fmt.Sprintf(gridIDFmt, r, c))
		}
	}
	labels = append(labels, SinkLabel)
	sink := len(labels) - 1

	ln, err := network.NewLabeled(labels, cfg.netOpts...)
	if err != nil {
		return nil, builderErrorf(methodGrid, "%w", err)
	}
	g := ln.Network()
	add := func(u, v int) error {
		if err := g.AddEdge(u, v, cfg.capacityFn(cfg.rng)); err != nil {
			return builderErrorf(methodGrid, "%w", err)
		}
		return nil
	}

	for r := 0; r < rows; r++ {
		if err := add(0, cell(r, 0)); err != nil {
			return nil, err
		}
		for c := 0; c < cols; c++ {
			u := cell(r, c)
			if c+1 < cols {
				if err := add(u, cell(r, c+1)); err != nil {
					return nil, err
				}
				if err := add(cell(r, c+1), u); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := add(u, cell(r+1, c)); err != nil {
					return nil, err
				}
				if err := add(cell(r+1, c), u); err != nil {
					return nil, err
				}
			}
		}
		if err := add(cell(r, cols-1), sink); err != nil {
			return nil, err
		}
	}

	return ln, nil
}
