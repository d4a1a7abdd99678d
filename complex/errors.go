// SPDX-License-Identifier: MIT
// Package: splex/complex
//
// errors.go — sentinel errors.

package complex

import "errors"

var (
	// ErrSimplexNotFound is returned by Remove for a simplex not in the complex.
	ErrSimplexNotFound = errors.New("complex: simplex not found")

	// ErrUnknownBackend is returned for an unrecognized backend tag.
	ErrUnknownBackend = errors.New("complex: unknown backend")

	// ErrNotClosed is returned by CheckClosure when a face of a member is missing.
	ErrNotClosed = errors.New("complex: not closed under faces")
)
