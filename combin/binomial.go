// SPDX-License-Identifier: MIT
// Package: splex/combin
//
// binomial.go — overflow-checked binomial coefficients.

package combin

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	methodBinomial      = "Binomial"
	methodInverseChoose = "InverseChoose"
)

// Binomial returns C(n, k), or ErrOverflow if it does not fit in a uint64.
// C(n, k) = 0 for k > n.
//
// The product is built as C(n-k+i, i) for i = 1..k, each step computed as
// C(n-k+i-1, i-1)·(n-k+i)/i with a 128-bit numerator. The division is exact
// and the partial results increase with i, so the first quotient that does
// not fit signals overflow of the final value.
// Complexity: O(min(k, n-k)).
func Binomial(n, k uint64) (uint64, error) {
	if k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}
	r := uint64(1)
	for i := uint64(1); i <= k; i++ {
		hi, lo := bits.Mul64(r, n-k+i)
		if hi >= i { // quotient needs more than 64 bits
			return 0, fmt.Errorf("%s: C(%d,%d): %w", methodBinomial, n, k, ErrOverflow)
		}
		r, _ = bits.Div64(hi, lo, i)
	}

	return r, nil
}

// choose is Binomial over ints; ok is false on overflow.
// Negative arguments yield (0, true).
func choose(n, k int) (uint64, bool) {
	if n < 0 || k < 0 {
		return 0, true
	}
	v, err := Binomial(uint64(n), uint64(k))

	return v, err == nil
}

// InverseChoose returns the n for which C(n, k) == x.
// For k = 1 this is x itself; for k = 2 the triangular-number inverse is
// used; other k are resolved by exponential then binary search.
// Returns ErrNotBinomial when x is not of the form C(n, k).
func InverseChoose(x uint64, k int) (int, error) {
	switch {
	case k < 1:
		return 0, fmt.Errorf("%s: k=%d: %w", methodInverseChoose, k, ErrInvalidCombination)
	case k == 1:
		if x > math.MaxInt {
			return 0, fmt.Errorf("%s: x=%d: %w", methodInverseChoose, x, ErrOverflow)
		}
		return int(x), nil
	case k == 2:
		// n(n-1)/2 = x  ⇒  n = (1 + sqrt(1+8x)) / 2, refined to an exact integer.
		n := int((1 + math.Sqrt(1+8*float64(x))) / 2)
		for n > 2 {
			if v, ok := choose(n, 2); !ok || v > x {
				n--
				continue
			}
			break
		}
		for {
			v, ok := choose(n+1, 2)
			if !ok || v > x {
				break
			}
			n++
		}
		if v, _ := choose(n, 2); v == x && n >= 2 {
			return n, nil
		}
		return 0, fmt.Errorf("%s: x=%d k=%d: %w", methodInverseChoose, x, k, ErrNotBinomial)
	}

	lo, hi := k, k
	for {
		v, ok := choose(hi, k)
		if !ok || v >= x {
			break
		}
		lo = hi
		hi *= 2
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if v, ok := choose(mid, k); ok && v < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if v, ok := choose(lo, k); ok && v == x {
		return lo, nil
	}

	return 0, fmt.Errorf("%s: x=%d k=%d: %w", methodInverseChoose, x, k, ErrNotBinomial)
}
