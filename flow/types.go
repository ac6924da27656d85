package flow

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Sentinel errors returned by the flow engines.
var (
	// ErrNilNetwork is returned when a nil *network.Network is passed.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrInvalidEndpoints is returned when source or sink is outside [0,N).
	ErrInvalidEndpoints = errors.New("flow: source or sink out of range")

	// ErrAugmentationLimit is returned, together with a partial Result, when
	// the MaxAugmentations cap is reached while an augmenting path still exists.
	ErrAugmentationLimit = errors.New("flow: augmentation limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")

	// ErrVerify is returned by Verify when a flow violates an invariant.
	ErrVerify = errors.New("flow: verification failed")
)

// DefaultEpsilon is the residual capacity at or below which an arc is
// treated as saturated.
const DefaultEpsilon = 1e-9

// Option configures a flow computation via functional arguments.
// An invalid Option (e.g. negative epsilon) is recorded and surfaced as
// ErrOptionViolation when the engine is invoked.
type Option func(*FlowOptions)

// FlowOptions holds the parameters and hooks shared by EdmondsKarp and Dinic.
type FlowOptions struct {
	// Epsilon: residual capacities ≤ Epsilon count as zero (default 1e-9).
	Epsilon float64

	// Logger receives one debug entry per augmentation and a summary at the
	// end. Defaults to a no-op logger.
	Logger *zap.Logger

	// OnAugment is called after each augmentation has been fully applied.
	// Returning an error stops the engine; the partial Result is returned
	// marked Incomplete together with the wrapped error.
	OnAugment func(Augmentation) error

	// MaxAugmentations, if > 0, caps the number of augmentations. Reaching
	// the cap while an augmenting path remains yields ErrAugmentationLimit.
	MaxAugmentations int

	// Trace records every augmentation in Result.Paths (default true).
	Trace bool

	// LevelRebuildInterval, Dinic only: rebuild the level graph after every
	// N pushes instead of after each blocking flow. 0 disables.
	LevelRebuildInterval int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns FlowOptions with:
//   - Epsilon = DefaultEpsilon
//   - zap.NewNop() logger
//   - no-op OnAugment
//   - no augmentation cap, tracing on, no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Epsilon:   DefaultEpsilon,
		Logger:    zap.NewNop(),
		OnAugment: func(Augmentation) error { return nil },
		Trace:     true,
	}
}

// WithEpsilon sets the saturation tolerance. eps must be finite and ≥ 0.
func WithEpsilon(eps float64) Option {
	return func(o *FlowOptions) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Epsilon must be finite and non-negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithLogger attaches a zap logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *FlowOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAugment registers a progress hook. Hooks chain: each registered
// hook runs in registration order and the first error stops the engine.
func WithOnAugment(fn func(Augmentation) error) Option {
	return func(o *FlowOptions) {
		if fn == nil {
			return
		}
		prev := o.OnAugment
		if prev == nil {
			o.OnAugment = fn
			return
		}
		o.OnAugment = func(a Augmentation) error {
			if err := prev(a); err != nil {
				return err
			}
			return fn(a)
		}
	}
}

// WithMaxAugmentations caps the number of augmentations.
//
//	n > 0:  at most n augmentations
//	n == 0: explicit "no limit"
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxAugmentations(n int) Option {
	return func(o *FlowOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAugmentations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAugmentations = n
	}
}

// WithTrace toggles recording of Result.Paths. Hooks fire either way.
func WithTrace(on bool) Option {
	return func(o *FlowOptions) {
		o.Trace = on
	}
}

// WithLevelRebuildInterval makes Dinic rebuild its level graph every n pushes.
func WithLevelRebuildInterval(n int) Option {
	return func(o *FlowOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: LevelRebuildInterval cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.LevelRebuildInterval = n
	}
}

// gatherOptions applies opts over DefaultOptions and reports the first
// recorded violation.
func gatherOptions(opts ...Option) (FlowOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// Augmentation is one completed push: the node sequence source→…→sink and
// the bottleneck amount sent along it.
type Augmentation struct {
	Path []int
	Flow float64
}

// Result is the outcome of a max-flow computation.
//
//   - MaxFlow: total flow pushed from source to sink.
//   - MinBottleneck: smallest path flow among all augmentations; +Inf when
//     no augmentation happened (use Bottleneck for an explicit "no flow").
//   - Paths: augmentations in the order they were applied (if tracing).
//   - Phases: number of augmentations applied.
//   - Incomplete: the engine stopped early (limit, deadline, hook error);
//     MaxFlow is then a lower bound.
type Result struct {
	MaxFlow       float64
	MinBottleneck float64
	Paths         []Augmentation
	Phases        int
	Incomplete    bool

	source, sink int
	n            int
	eps          float64
	edges        []edgeRecord // original edges, insertion order
	original     []float64    // original capacity matrix, row-major
	residual     []float64    // final residual matrix, row-major
}

// edgeRecord mirrors network.Edge without tying Result to the caller's network.
type edgeRecord struct {
	from, to int
	capacity float64
}

// Bottleneck returns MinBottleneck and true, or (0, false) when no flow was
// pushed and the minimum bottleneck is therefore undefined.
func (r *Result) Bottleneck() (float64, bool) {
	if r.Phases == 0 || math.IsInf(r.MinBottleneck, 1) {
		return 0, false
	}

	return r.MinBottleneck, true
}

// Source returns the source node of the computation.
func (r *Result) Source() int { return r.source }

// Sink returns the sink node of the computation.
func (r *Result) Sink() int { return r.sink }

// Residual returns the final residual capacity of u→v (0 when out of range).
func (r *Result) Residual(u, v int) float64 {
	if u < 0 || u >= r.n || v < 0 || v >= r.n {
		return 0
	}

	return r.residual[u*r.n+v]
}

// Flow returns the flow carried by the arc u→v: original capacity minus
// final residual, when positive; 0 otherwise or when out of range.
func (r *Result) Flow(u, v int) float64 {
	if u < 0 || u >= r.n || v < 0 || v >= r.n {
		return 0
	}
	off := u*r.n + v
	if f := r.original[off] - r.residual[off]; f > 0 {
		return f
	}

	return 0
}

// record appends a to the result and folds it into the totals.
func (r *Result) record(a Augmentation, trace bool) {
	r.MaxFlow += a.Flow
	r.MinBottleneck = math.Min(r.MinBottleneck, a.Flow)
	r.Phases++
	if trace {
		r.Paths = append(r.Paths, a)
	}
}

// stop marks the result partial and returns it with err.
func (r *Result) stop(err error) (*Result, error) {
	r.Incomplete = true

	return r, err
}
