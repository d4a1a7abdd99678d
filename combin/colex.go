// SPDX-License-Identifier: MIT
// Package: splex/combin
//
// colex.go — colexicographic rank/unrank.

package combin

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
)

const (
	methodRankColex   = "RankColex"
	methodUnrankColex = "UnrankColex"
)

// normalize returns a sorted copy of c, rejecting negative or repeated labels.
func normalize(method string, c []int) ([]int, error) {
	s := slices.Clone(c)
	slices.Sort(s)
	for i, v := range s {
		if v < 0 {
			return nil, fmt.Errorf("%s: label %d: %w", method, v, ErrInvalidCombination)
		}
		if i > 0 && s[i-1] == v {
			return nil, fmt.Errorf("%s: repeated label %d: %w", method, v, ErrInvalidCombination)
		}
	}

	return s, nil
}

// RankColex returns the colex rank Σ C(c_i, i+1) of the combination c.
// The input is sorted first, so permutations of c share a rank.
// An empty combination has rank 0.
// Complexity: O(k²) for k = len(c) (O(k log k) sort plus k binomials).
func RankColex(c []int) (uint64, error) {
	s, err := normalize(methodRankColex, c)
	if err != nil {
		return 0, err
	}

	return rankColexSorted(s)
}

// rankColexSorted ranks an already normalized combination.
func rankColexSorted(s []int) (uint64, error) {
	if len(s) == 2 {
		return rankColexC2(s[0], s[1])
	}
	var r uint64
	for i, v := range s {
		b, ok := choose(v, i+1)
		if !ok {
			return 0, fmt.Errorf("%s: %v: %w", methodRankColex, s, ErrOverflow)
		}
		var carry uint64
		if r, carry = bits.Add64(r, b, 0); carry != 0 {
			return 0, fmt.Errorf("%s: %v: %w", methodRankColex, s, ErrOverflow)
		}
	}

	return r, nil
}

// rankColexC2 is the k=2 closed form: C(j,2) + i for i < j.
func rankColexC2(i, j int) (uint64, error) {
	t, ok := triangular(uint64(j))
	if !ok {
		return 0, fmt.Errorf("%s: (%d,%d): %w", methodRankColex, i, j, ErrOverflow)
	}
	r, carry := bits.Add64(t, uint64(i), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%s: (%d,%d): %w", methodRankColex, i, j, ErrOverflow)
	}

	return r, nil
}

// triangular returns j(j-1)/2 = C(j,2); ok is false on overflow.
func triangular(j uint64) (uint64, bool) {
	if j < 2 {
		return 0, true
	}
	hi, lo := bits.Mul64(j, j-1)
	if hi > 1 {
		return 0, false
	}

	return hi<<63 | lo>>1, true
}

// UnrankColex returns the sorted k-combination whose colex rank is r.
// Colex ranks are unbounded in n, so any r is valid for k ≥ 1 as long as
// the resulting labels fit in an int. For k = 0 only r = 0 is valid.
// Complexity: O(k·log(c_max)) binomial evaluations.
func UnrankColex(r uint64, k int) ([]int, error) {
	switch {
	case k < 0:
		return nil, fmt.Errorf("%s: k=%d: %w", methodUnrankColex, k, ErrInvalidCombination)
	case k == 0:
		if r != 0 {
			return nil, fmt.Errorf("%s: r=%d k=0: %w", methodUnrankColex, r, ErrRankOutOfRange)
		}
		return []int{}, nil
	case k == 1:
		// C(m, 1) = m
		if r > math.MaxInt {
			return nil, fmt.Errorf("%s: r=%d k=1: %w", methodUnrankColex, r, ErrOverflow)
		}
		return []int{int(r)}, nil
	case k == 2:
		i, j, err := unrankColexC2(r)
		if err != nil {
			return nil, err
		}
		return []int{i, j}, nil
	}

	out := make([]int, k)
	for i := k; i >= 1; i-- {
		m, err := largestBelow(r, i)
		if err != nil {
			return nil, err
		}
		out[i-1] = m
		b, _ := choose(m, i)
		r -= b
	}

	return out, nil
}

// unrankColexC2 inverts C(j,2) + i via the triangular-number inverse.
func unrankColexC2(r uint64) (int, int, error) {
	j := uint64((1 + math.Sqrt(1+8*float64(r))) / 2)
	if j < 1 {
		j = 1
	}
	for j > 1 {
		if t, ok := triangular(j); !ok || t > r {
			j--
			continue
		}
		break
	}
	for {
		t, ok := triangular(j + 1)
		if !ok || t > r {
			break
		}
		j++
	}
	t, _ := triangular(j)
	i := r - t
	if j > math.MaxInt {
		return 0, 0, fmt.Errorf("%s: r=%d: %w", methodUnrankColex, r, ErrOverflow)
	}

	return int(i), int(j), nil
}

// largestBelow returns the largest m with C(m, i) ≤ r (i ≥ 1).
// C(i-1, i) = 0 so m = i-1 always qualifies; the upper end is found by
// doubling, capped at math.MaxInt, and the answer by bisection.
func largestBelow(r uint64, i int) (int, error) {
	lo := i - 1
	step := 1
	var hi int
	for {
		cand := lo + step
		if v, ok := choose(cand, i); !ok || v > r {
			hi = cand
			break
		}
		lo = cand
		if lo == math.MaxInt {
			return lo, nil
		}
		// clamp the last candidate to MaxInt
		if step > (math.MaxInt-lo)/2 {
			step = math.MaxInt - lo
		} else {
			step *= 2
		}
	}
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if v, ok := choose(mid, i); ok && v <= r {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}
