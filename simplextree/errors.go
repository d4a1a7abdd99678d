// SPDX-License-Identifier: MIT
// Package: splex/simplextree
//
// errors.go — sentinel errors.

package simplextree

import "errors"

var (
	// ErrUnknownOrder is returned by ParseOrder and Traverse for an unrecognized order.
	ErrUnknownOrder = errors.New("simplextree: unknown traversal order")

	// ErrOptionViolation is returned when a traversal option is invalid or a
	// required one (simplex, dimension) is missing for the chosen order.
	ErrOptionViolation = errors.New("simplextree: invalid traversal option")

	// ErrInvalidDimension is returned for a negative expansion dimension.
	ErrInvalidDimension = errors.New("simplextree: invalid dimension")

	// ErrSimplexNotFound is returned by Collapse when a simplex of the pair is absent.
	ErrSimplexNotFound = errors.New("simplextree: simplex not found")

	// ErrNotFreePair is returned by Collapse when tau is not a facet-coface of sigma.
	ErrNotFreePair = errors.New("simplextree: not a collapsible pair")

	// ErrCorrupt is returned by Verify when an internal invariant is broken.
	ErrCorrupt = errors.New("simplextree: internal invariant violated")
)
