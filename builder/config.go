// SPDX-License-Identifier: MIT
// Package: splex/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn = identity (vertex i is labelled i)
//   • rng     = nil      (no randomness unless seeded)

package builder

import "math/rand"

// builderConfig aggregates the knobs constructors read.
// It is passed by value to constructors.
type builderConfig struct {
	// labelFn maps a construction index to a vertex label.
	labelFn func(int) int
	// rng drives stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{labelFn: identityLabel}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func identityLabel(i int) int { return i }
