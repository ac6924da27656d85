// SPDX-License-Identifier: MIT
// Package: maxflow/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn                 ("0","1","2",...)
//   • rng        = nil                          (deterministic unless seeded)
//   • capacityFn = UniformIntCapacityFn(1, 20)
//   • netOpts    = none                         (network defaults apply)
//   • left/right = "L" / "R"                     (bipartite partitions)

package builder

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/maxflow/network"
)

// Default integral capacity range for random networks.
const (
	DefaultMinCapacity = 1
	DefaultMaxCapacity = 20
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	capacityFn CapacityFn
	netOpts    []network.Option

	// Bipartite label prefixes. Empty resolves to the defaults.
	leftPrefix  string
	rightPrefix string

	// first range violation recorded by an option
	err error
}

// newBuilderConfig applies opts over the defaults in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		capacityFn: UniformIntCapacityFn(DefaultMinCapacity, DefaultMaxCapacity),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
