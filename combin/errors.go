// SPDX-License-Identifier: MIT
// Package: splex/combin
//
// errors.go — sentinel errors. Callers branch with errors.Is.

package combin

import "errors"

var (
	// ErrInvalidCombination is returned for negative, repeated, or
	// out-of-universe labels, and for a negative k or n.
	ErrInvalidCombination = errors.New("combin: invalid combination")

	// ErrRankOutOfRange is returned when a rank is not in [0, C(n,k)).
	ErrRankOutOfRange = errors.New("combin: rank out of range")

	// ErrOverflow is returned when a binomial coefficient or rank
	// does not fit in 64 bits.
	ErrOverflow = errors.New("combin: uint64 overflow")

	// ErrUnknownOrder is returned by ParseOrder for an unrecognized tag.
	ErrUnknownOrder = errors.New("combin: unknown order")

	// ErrNotBinomial is returned by InverseChoose when no n satisfies C(n,k) = x.
	ErrNotBinomial = errors.New("combin: value is not a binomial coefficient")
)
