// SPDX-License-Identifier: MIT
// Package: splex/combin
//
// batch.go — rank/unrank over slices with an explicit order flag.

package combin

import "fmt"

// Rank ranks one combination in the given order. n is ignored for Colex.
func Rank(c []int, o Order, n int) (uint64, error) {
	switch o {
	case Colex:
		return RankColex(c)
	case Lex:
		return RankLex(c, n)
	}

	return 0, fmt.Errorf("Rank: %v: %w", o, ErrUnknownOrder)
}

// Unrank inverts Rank for k-combinations. n is ignored for Colex.
func Unrank(r uint64, k int, o Order, n int) ([]int, error) {
	switch o {
	case Colex:
		return UnrankColex(r, k)
	case Lex:
		return UnrankLex(r, k, n)
	}

	return nil, fmt.Errorf("Unrank: %v: %w", o, ErrUnknownOrder)
}

// RankCombs ranks every combination in combs. Combinations may have
// different sizes. The first failure aborts with the offending index.
func RankCombs(combs [][]int, o Order, n int) ([]uint64, error) {
	out := make([]uint64, len(combs))
	for i, c := range combs {
		r, err := Rank(c, o, n)
		if err != nil {
			return nil, fmt.Errorf("RankCombs[%d]: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}

// UnrankCombs unranks every rank as a k-combination.
func UnrankCombs(ranks []uint64, k int, o Order, n int) ([][]int, error) {
	out := make([][]int, len(ranks))
	for i, r := range ranks {
		c, err := Unrank(r, k, o, n)
		if err != nil {
			return nil, fmt.Errorf("UnrankCombs[%d]: %w", i, err)
		}
		out[i] = c
	}

	return out, nil
}
