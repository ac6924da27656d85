package flow

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxflow/network"
)

// Dinic computes the maximum flow from source→sink using Dinic's algorithm
// (level graph + blocking flows) on the same dense residual representation
// as EdmondsKarp. Every DFS push is reported as one Augmentation, so the
// Result, hooks and limits behave exactly as for EdmondsKarp; only the
// decomposition into paths differs.
//
// Steps:
//  1. Resolve options; validate g, source and sink.
//  2. Repeat until sink leaves the level graph:
//     a. check ctx;
//     b. BFS from source to assign levels over residual arcs > Epsilon;
//     c. DFS pushes along level+1 arcs until the flow is blocking,
//     optionally rebuilding levels every LevelRebuildInterval pushes.
//
// Complexity:
//
//	Time:   O(V²·E) phases bound; each level BFS O(V²) on the dense matrix.
//	Memory: O(V²) residual + O(V) level/iterator slices.
func Dinic(
	ctx context.Context,
	g *network.Network,
	source, sink int,
	opts ...Option,
) (*Result, error) {
	o, err := prepare("Dinic", g, source, sink, opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	res := newResult(g, source, sink, o.Epsilon)
	if source == sink {
		return res, nil
	}

	d := &dinic{
		residual: newResidual(res.residual, res.n, o.Epsilon),
		level:    make([]int, res.n),
		next:     make([]int, res.n),
	}
	for {
		if err := ctx.Err(); err != nil {
			return res.stop(fmt.Errorf("Dinic: after %d augmentations: %w", res.Phases, err))
		}
		if !d.buildLevels(source, sink) {
			break
		}
		for i := range d.next {
			d.next[i] = 0
		}

		pushes := 0
		for {
			if err := ctx.Err(); err != nil {
				return res.stop(fmt.Errorf("Dinic: after %d augmentations: %w", res.Phases, err))
			}
			d.stack = d.stack[:0]
			pushed := d.pushFlow(source, sink, math.Inf(1))
			if pushed == 0 {
				break
			}
			if o.MaxAugmentations > 0 && res.Phases >= o.MaxAugmentations {
				// The push already landed in the residual; undo it so the
				// matrix matches the recorded augmentations.
				d.rollback(source, pushed)
				return res.stop(fmt.Errorf("Dinic: %d augmentations: %w", res.Phases, ErrAugmentationLimit))
			}

			a := Augmentation{Path: d.pathFromStack(source), Flow: pushed}
			res.record(a, o.Trace)
			o.Logger.Debug("dinic push",
				zap.Ints("path", a.Path),
				zap.Float64("flow", pushed),
				zap.Float64("total", res.MaxFlow),
			)
			if err := o.OnAugment(a); err != nil {
				return res.stop(fmt.Errorf("Dinic: OnAugment at phase %d: %w", res.Phases, err))
			}

			pushes++
			if o.LevelRebuildInterval > 0 && pushes%o.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	o.Logger.Info("max flow computed",
		zap.String("engine", "dinic"),
		zap.Int("source", source),
		zap.Int("sink", sink),
		zap.Float64("max_flow", res.MaxFlow),
		zap.Int("augmentations", res.Phases),
	)

	return res, nil
}

// dinic carries the level graph state on top of the shared residual matrix.
type dinic struct {
	*residual
	level []int // BFS distance from source; -1 when unreachable
	next  []int // current-arc pointer per node
	stack []int // heads of the arcs used by the last successful push, sink first
}

// buildLevels assigns BFS levels and reports whether sink is reachable.
func (d *dinic) buildLevels(source, sink int) bool {
	for i := range d.level {
		d.level[i] = -1
	}
	d.level[source] = 0
	d.queue = append(d.queue[:0], source)
	for head := 0; head < len(d.queue); head++ {
		u := d.queue[head]
		for v := 0; v < d.n; v++ {
			if d.level[v] < 0 && d.cap[u*d.n+v] > d.eps {
				d.level[v] = d.level[u] + 1
				d.queue = append(d.queue, v)
			}
		}
	}

	return d.level[sink] >= 0
}

// pushFlow sends up to limit units from u toward sink along level+1 arcs,
// advancing the current-arc pointer past arcs that cannot carry more.
// On success the arcs used are pushed onto d.stack (sink first).
func (d *dinic) pushFlow(u, sink int, limit float64) float64 {
	if u == sink {
		return limit
	}
	for ; d.next[u] < d.n; d.next[u]++ {
		v := d.next[u]
		c := d.cap[u*d.n+v]
		if c <= d.eps || d.level[v] != d.level[u]+1 {
			continue
		}
		if pushed := d.pushFlow(v, sink, math.Min(limit, c)); pushed > 0 {
			d.push(u, v, pushed)
			d.stack = append(d.stack, v)
			return pushed
		}
	}

	return 0
}

// pathFromStack rebuilds source→…→sink from the last push.
func (d *dinic) pathFromStack(source int) []int {
	path := make([]int, 0, len(d.stack)+1)
	path = append(path, source)
	for i := len(d.stack) - 1; i >= 0; i-- {
		path = append(path, d.stack[i])
	}

	return path
}

// rollback reverses the last push so a capped Result stays consistent.
func (d *dinic) rollback(source int, f float64) {
	path := d.pathFromStack(source)
	for i := len(path) - 1; i > 0; i-- {
		d.push(path[i], path[i-1], f)
	}
}
