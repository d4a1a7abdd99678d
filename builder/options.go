// SPDX-License-Identifier: MIT
// Package: splex/builder
//
// options.go — functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs (nil
// functions, nil RNG); constructors themselves never panic.

package builder

import "math/rand"

// Option customizes the builderConfig before construction begins.
type Option func(*builderConfig)

// WithLabelFn sets the vertex labelling: construction index → label.
// Labels must be non-negative; the function should be injective or
// distinct indices will merge. Panics on nil.
func WithLabelFn(fn func(int) int) Option {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
