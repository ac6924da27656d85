// SPDX-License-Identifier: MIT
// Package: maxflow/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Constructors of options that can only be misused by a programmer
//     (nil RNG, nil functions) panic. Range checks that may come from user
//     input (WithCapacityRange) are recorded and surface as errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/maxflow/network"
)

// Option customizes a builder by mutating a builderConfig before
// construction begins. Later options override earlier ones.
type Option func(*builderConfig)

// WithIDScheme sets the label generator: idx -> string. nil is ignored.
func WithIDScheme(fn IDFn) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed uint64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacityFn overrides the per-edge capacity generator. Panics on nil.
func WithCapacityFn(fn CapacityFn) Option {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capacityFn = fn
	}
}

// WithCapacityRange draws integral capacities uniformly from [min, max].
// An invalid range is reported by the builder as ErrInvalidCapacityRange.
func WithCapacityRange(min, max int) Option {
	return func(c *builderConfig) {
		if min < 0 || max < min {
			c.err = fmt.Errorf("[%d,%d]: %w", min, max, ErrInvalidCapacityRange)
			return
		}
		c.capacityFn = UniformIntCapacityFn(min, max)
	}
}

// WithNetworkOptions forwards options (e.g. a duplicate policy) to the
// network the builder creates.
func WithNetworkOptions(opts ...network.Option) Option {
	return func(c *builderConfig) {
		c.netOpts = append(c.netOpts, opts...)
	}
}

// WithPartitionPrefix sets the bipartite side labels. Empty values mean
// "use defaults".
func WithPartitionPrefix(left, right string) Option {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
