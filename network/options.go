// SPDX-License-Identifier: MIT
// Package: maxflow/network
//
// options.go - functional options for Network construction.
//
// Contract:
//   - Option constructors validate their argument and panic on values that
//     can only be a programmer error (unknown policy).
//   - Defaults are resolved in one place (gatherOptions); no globals.

package network

import "fmt"

// DuplicatePolicy decides what AddEdge does when capacity has already been
// recorded between the same ordered pair.
type DuplicatePolicy int

const (
	// DuplicateIgnore keeps the first recorded capacity; later insertions
	// between the same ordered pair are silently dropped.
	DuplicateIgnore DuplicatePolicy = iota

	// DuplicateOverwrite replaces the recorded capacity (last write wins).
	DuplicateOverwrite

	// DuplicateSum adds the new capacity to the recorded one (multigraph
	// edges collapse into a single arc).
	DuplicateSum
)

// DefaultDuplicatePolicy is the policy used when WithDuplicatePolicy is absent.
const DefaultDuplicatePolicy = DuplicateIgnore

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateIgnore:
		return "ignore"
	case DuplicateOverwrite:
		return "overwrite"
	case DuplicateSum:
		return "sum"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps "ignore", "overwrite" and "sum" to a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "ignore", "":
		return DuplicateIgnore, nil
	case "overwrite":
		return DuplicateOverwrite, nil
	case "sum":
		return DuplicateSum, nil
	}

	return DuplicateIgnore, fmt.Errorf("network: unknown duplicate policy %q", s)
}

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options is the resolved configuration of a Network.
type Options struct {
	duplicates DuplicatePolicy
}

// WithDuplicatePolicy selects how repeated insertions between the same
// ordered pair are handled. Panics on an unknown policy value.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if p < DuplicateIgnore || p > DuplicateSum {
		panic(fmt.Sprintf("network: WithDuplicatePolicy: unknown policy %d", int(p)))
	}

	return func(o *Options) {
		o.duplicates = p
	}
}

// gatherOptions starts from defaults and applies opts in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{duplicates: DefaultDuplicatePolicy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
