// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Defaults:
//   - rng = nil (pure and deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates the knobs read by constructors. It is passed by
// value, so a constructor cannot leak changes into the next one.
type builderConfig struct {
	rng *rand.Rand // nil means no randomness
}

// BuilderOption customizes a build by mutating the configuration before any
// constructor runs. Options apply left to right.
type BuilderOption func(*builderConfig)

// newBuilderConfig resolves opts on top of the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh RNG seeded with seed. Use it in tests and
// benchmarks to freeze RandomSparse outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
