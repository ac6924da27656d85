package flow

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxflow/network"
)

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns a Result holding the total flow, the smallest bottleneck seen,
// and the ordered list of augmenting paths. g is only read; all residual
// updates happen on a private copy of its capacity matrix.
//
// Steps:
//  1. Resolve options; validate g, source and sink.
//  2. source == sink: return a zero-flow Result without searching.
//  3. Loop until SEARCH fails:
//     a. check ctx (deadline / cancellation);
//     b. SEARCH: BFS over residual arcs > Epsilon, first-discovered parent wins;
//     c. stop with ErrAugmentationLimit if the cap is reached and a path remains;
//     d. AUGMENT: bottleneck walk, update walk, accumulate, record, notify hook.
//
// Errors:
//   - ErrNilNetwork, ErrInvalidEndpoints, ErrOptionViolation: nil Result, no work.
//   - ErrAugmentationLimit, ctx.Err(), hook errors: partial Result with
//     Incomplete == true, error wrapped with context.
//
// Complexity:
//
//	Time:   O(V·E) phases × O(V²) per dense BFS.
//	Memory: O(V²) for the residual matrix.
func EdmondsKarp(
	ctx context.Context,
	g *network.Network,
	source, sink int,
	opts ...Option,
) (*Result, error) {
	o, err := prepare("EdmondsKarp", g, source, sink, opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	res := newResult(g, source, sink, o.Epsilon)
	if source == sink {
		o.Logger.Debug("source equals sink, nothing to augment", zap.Int("node", source))
		return res, nil
	}

	r := newResidual(res.residual, res.n, o.Epsilon)
	for {
		if err := ctx.Err(); err != nil {
			return res.stop(fmt.Errorf("EdmondsKarp: after %d augmentations: %w", res.Phases, err))
		}
		if !r.search(source, sink) {
			break
		}
		if o.MaxAugmentations > 0 && res.Phases >= o.MaxAugmentations {
			return res.stop(fmt.Errorf("EdmondsKarp: %d augmentations: %w", res.Phases, ErrAugmentationLimit))
		}

		f := r.bottleneck(source, sink)
		r.augment(source, sink, f)
		a := Augmentation{Path: r.path(source, sink), Flow: f}
		res.record(a, o.Trace)

		o.Logger.Debug("augmenting path",
			zap.Ints("path", a.Path),
			zap.Float64("flow", a.Flow),
			zap.Float64("total", res.MaxFlow),
		)
		if err := o.OnAugment(a); err != nil {
			return res.stop(fmt.Errorf("EdmondsKarp: OnAugment at phase %d: %w", res.Phases, err))
		}
	}

	o.Logger.Info("max flow computed",
		zap.String("engine", "edmonds-karp"),
		zap.Int("source", source),
		zap.Int("sink", sink),
		zap.Float64("max_flow", res.MaxFlow),
		zap.Int("augmentations", res.Phases),
	)

	return res, nil
}

// errStopIteration is returned by the Augmentations hook when the consumer
// breaks out of its range loop.
var errStopIteration = errors.New("flow: iteration stopped by consumer")

// Augmentations runs EdmondsKarp and yields each augmentation as soon as it
// has been applied. The residual state is consistent at every yield; the
// engine is not resumed until the loop body returns. Breaking out of the
// loop stops the engine. A terminal error (limit, deadline, bad input) is
// yielded once as (Augmentation{}, err).
//
//	for a, err := range flow.Augmentations(ctx, g, 0, 5) {
//	    if err != nil { ... }
//	    draw(a.Path, a.Flow)
//	}
func Augmentations(
	ctx context.Context,
	g *network.Network,
	source, sink int,
	opts ...Option,
) iter.Seq2[Augmentation, error] {
	return func(yield func(Augmentation, error) bool) {
		hook := WithOnAugment(func(a Augmentation) error {
			if !yield(a, nil) {
				return errStopIteration
			}
			return nil
		})
		all := make([]Option, 0, len(opts)+2)
		all = append(all, opts...)
		all = append(all, WithTrace(false), hook)

		_, err := EdmondsKarp(ctx, g, source, sink, all...)
		if err != nil && !errors.Is(err, errStopIteration) {
			yield(Augmentation{}, err)
		}
	}
}

// prepare resolves options and validates the inputs shared by all engines.
func prepare(method string, g *network.Network, source, sink int, opts []Option) (FlowOptions, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return o, fmt.Errorf("%s: %w", method, err)
	}
	if g == nil {
		return o, fmt.Errorf("%s: %w", method, ErrNilNetwork)
	}
	n := g.Size()
	if source < 0 || source >= n {
		return o, fmt.Errorf("%s: source %d outside [0,%d): %w", method, source, n, ErrInvalidEndpoints)
	}
	if sink < 0 || sink >= n {
		return o, fmt.Errorf("%s: sink %d outside [0,%d): %w", method, sink, n, ErrInvalidEndpoints)
	}

	return o, nil
}
