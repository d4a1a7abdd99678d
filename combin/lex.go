// SPDX-License-Identifier: MIT
// Package: splex/combin
//
// lex.go — lexicographic rank/unrank over a universe of size n.

package combin

import "fmt"

const (
	methodRankLex   = "RankLex"
	methodUnrankLex = "UnrankLex"
)

// RankLex returns the lexicographic rank of c among the k-subsets of
// {0,...,n-1}: C(n,k) - 1 - Σ C(n-1-c_i, k-i).
// Every label must be < n. An empty combination has rank 0.
// Complexity: O(k·min(k, n-k)).
func RankLex(c []int, n int) (uint64, error) {
	s, err := normalize(methodRankLex, c)
	if err != nil {
		return 0, err
	}
	k := len(s)
	if n < 0 || k > n {
		return 0, fmt.Errorf("%s: k=%d n=%d: %w", methodRankLex, k, n, ErrInvalidCombination)
	}
	if k > 0 && s[k-1] >= n {
		return 0, fmt.Errorf("%s: label %d ≥ n=%d: %w", methodRankLex, s[k-1], n, ErrInvalidCombination)
	}
	if k == 2 {
		return RankC2(s[0], s[1], n)
	}

	total, ok := choose(n, k)
	if !ok {
		return 0, fmt.Errorf("%s: C(%d,%d): %w", methodRankLex, n, k, ErrOverflow)
	}
	r := total - 1
	for i, v := range s {
		b, _ := choose(n-1-v, k-i) // bounded by total
		r -= b
	}

	return r, nil
}

// UnrankLex returns the k-subset of {0,...,n-1} with lexicographic rank r.
// r must lie in [0, C(n,k)).
// Complexity: O(n·min(k, n-k)) binomial evaluations in the worst case.
func UnrankLex(r uint64, k, n int) ([]int, error) {
	if k < 0 || n < 0 || k > n {
		return nil, fmt.Errorf("%s: k=%d n=%d: %w", methodUnrankLex, k, n, ErrInvalidCombination)
	}
	total, ok := choose(n, k)
	if !ok {
		return nil, fmt.Errorf("%s: C(%d,%d): %w", methodUnrankLex, n, k, ErrOverflow)
	}
	if r >= total {
		return nil, fmt.Errorf("%s: r=%d ≥ C(%d,%d)=%d: %w", methodUnrankLex, r, n, k, total, ErrRankOutOfRange)
	}
	if k == 2 {
		i, j, err := UnrankC2(r, n)
		if err != nil {
			return nil, err
		}
		return []int{i, j}, nil
	}

	out := make([]int, k)
	x := 1
	for i := 1; i <= k; i++ {
		for {
			b, _ := choose(n-x, k-i)
			if r < b {
				break
			}
			r -= b
			x++
		}
		out[i-1] = x - 1
		x++
	}

	return out, nil
}
