// SPDX-License-Identifier: MIT
// Package: splex/filtration
//
// errors.go — sentinel errors and method tags.

package filtration

import "errors"

var (
	// ErrLengthMismatch is returned by Reindex when the key count differs from Len.
	ErrLengthMismatch = errors.New("filtration: key count does not match simplex count")

	// ErrNotMonotone is returned when a face would follow one of its cofaces.
	ErrNotMonotone = errors.New("filtration: keys are not monotone on faces")

	// ErrNotClosed is returned when a face of a listed simplex is missing.
	ErrNotClosed = errors.New("filtration: not closed under faces")

	// ErrDuplicateSimplex is returned by FromPairs for a simplex listed twice.
	ErrDuplicateSimplex = errors.New("filtration: duplicate simplex")

	// ErrSimplexNotFound is returned by Remove for an absent simplex.
	ErrSimplexNotFound = errors.New("filtration: simplex not found")

	// ErrUnknownBackend is returned for an unrecognized backend tag.
	ErrUnknownBackend = errors.New("filtration: unknown backend")
)

const (
	methodFromComplex = "FromComplex"
	methodFromPairs   = "FromPairs"
	methodAdd         = "Add"
	methodRemove      = "Remove"
	methodReindex     = "Reindex"
	methodReindexFunc = "ReindexFunc"
	methodValidate    = "Validate"
)
