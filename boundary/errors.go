// SPDX-License-Identifier: MIT
// Package: splex/boundary
//
// errors.go — sentinel errors.

package boundary

import "errors"

var (
	// ErrNegativeDimension is returned for p < 0.
	ErrNegativeDimension = errors.New("boundary: negative dimension")

	// ErrMissingFace is returned when a facet of a column simplex is not a row.
	ErrMissingFace = errors.New("boundary: facet missing from source")
)
