// SPDX-License-Identifier: MIT
// Package: splex/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with "%s: ...: %w" using their method tag.
//   • Validation order: sizes, then probability, then RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, d, k) is below the
// minimum the constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidDimension indicates a skeleton or random-complex dimension
// outside [0, n-1].
var ErrInvalidDimension = errors.New("builder: invalid dimension")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the complex rejected a simplex (for
// instance a negative label from WithLabelFn) or that a nil constructor was
// passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
