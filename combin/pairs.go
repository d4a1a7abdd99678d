// SPDX-License-Identifier: MIT
// Package: splex/combin
//
// pairs.go — closed forms for 2-combinations in lex order.

package combin

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	methodRankC2   = "RankC2"
	methodUnrankC2 = "UnrankC2"
)

// rowStart returns the lex rank of (i, i+1): n·i - i(i+1)/2 = i(2n-i-1)/2.
// The product is even, so halving the 128-bit value is exact.
func rowStart(i, n uint64) (uint64, bool) {
	hi, lo := bits.Mul64(i, 2*n-i-1)
	if hi > 1 {
		return 0, false
	}

	return hi<<63 | lo>>1, true
}

// RankC2 returns the lex rank of the pair {i, j} among the 2-subsets of
// {0,...,n-1}: n·i - i(i+1)/2 + j - i - 1 (with i < j after swapping).
// This is the index of d(i,j) in a condensed pairwise-distance vector.
// Complexity: O(1).
func RankC2(i, j, n int) (uint64, error) {
	if i > j {
		i, j = j, i
	}
	if i < 0 || i == j || j >= n {
		return 0, fmt.Errorf("%s: (%d,%d) n=%d: %w", methodRankC2, i, j, n, ErrInvalidCombination)
	}
	if _, ok := choose(n, 2); !ok {
		return 0, fmt.Errorf("%s: n=%d: %w", methodRankC2, n, ErrOverflow)
	}
	start, _ := rowStart(uint64(i), uint64(n)) // bounded by C(n,2)

	return start + uint64(j-i-1), nil
}

// UnrankC2 inverts RankC2. The closed form
//
//	i = n - 2 - ⌊sqrt(-8x + 4n(n-1) - 7)/2 - 0.5⌋
//
// is evaluated in float64 and then corrected against exact row offsets,
// so it stays exact for large n.
// Complexity: O(1) amortized.
func UnrankC2(x uint64, n int) (int, int, error) {
	if n < 2 {
		return 0, 0, fmt.Errorf("%s: n=%d: %w", methodUnrankC2, n, ErrInvalidCombination)
	}
	total, ok := choose(n, 2)
	if !ok {
		return 0, 0, fmt.Errorf("%s: n=%d: %w", methodUnrankC2, n, ErrOverflow)
	}
	if x >= total {
		return 0, 0, fmt.Errorf("%s: x=%d ≥ C(%d,2)=%d: %w", methodUnrankC2, x, n, total, ErrRankOutOfRange)
	}

	fn, fx := float64(n), float64(x)
	disc := max(0, -8*fx+4*fn*(fn-1)-7)
	i := n - 2 - int(math.Floor(math.Sqrt(disc)/2-0.5))
	i = max(0, min(i, n-2))

	un := uint64(n)
	row := func(i int) uint64 {
		s, _ := rowStart(uint64(i), un)
		return s
	}
	for i > 0 && row(i) > x {
		i--
	}
	for i < n-2 && row(i+1) <= x {
		i++
	}
	j := int(x-row(i)) + i + 1

	return i, j, nil
}
