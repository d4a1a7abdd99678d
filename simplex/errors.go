// SPDX-License-Identifier: MIT
// Package: splex/simplex
//
// errors.go — sentinel errors.

package simplex

import "errors"

var (
	// ErrNegativeVertex is returned when a vertex label is negative.
	ErrNegativeVertex = errors.New("simplex: negative vertex label")

	// ErrNotSorted is returned by FromSorted when labels are not strictly increasing.
	ErrNotSorted = errors.New("simplex: labels not strictly increasing")
)
