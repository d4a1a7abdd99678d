// SPDX-License-Identifier: MIT
// Package: splex/geometry
//
// errors.go — sentinel errors.

package geometry

import "errors"

var (
	// ErrNoPoints is returned when fewer than two points are given.
	ErrNoPoints = errors.New("geometry: need at least two points")

	// ErrRaggedPoints is returned when points differ in dimension.
	ErrRaggedPoints = errors.New("geometry: points differ in dimension")

	// ErrBadDistances is returned for a condensed vector whose length is not
	// C(n,2) or that holds a negative or NaN distance.
	ErrBadDistances = errors.New("geometry: invalid condensed distances")

	// ErrWeightCount is returned when vertex weights do not match the point count.
	ErrWeightCount = errors.New("geometry: vertex weight count mismatch")

	// ErrNegativeRadius is returned for r < 0.
	ErrNegativeRadius = errors.New("geometry: negative radius")
)
