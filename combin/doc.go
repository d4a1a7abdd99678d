// SPDX-License-Identifier: MIT

// Package combin implements the combinatorial number system: bijections
// between k-element subsets of {0,...,n-1} and integers in [0, C(n,k)).
//
// Two orders are supported:
//
//	Colex — rank(c) = Σ C(c_i, i+1); independent of n, the default.
//	Lex   — rank(c) = C(n,k) - 1 - Σ C(n-1-c_i, k-i); requires n.
//
// Ranks are uint64. Every binomial coefficient is evaluated with a 128-bit
// intermediate product, so a rank that does not fit in 64 bits is reported
// as ErrOverflow instead of wrapping. For a complex of dimension d on n
// vertices the safe regime is C(n, d+1) < 2^64.
//
// Inputs are normalized before ranking: a combination is sorted, so any
// permutation of the same subset yields the same rank. Negative or repeated
// labels are ErrInvalidCombination.
//
// Pairs (k=2) take closed-form paths in both orders; RankC2/UnrankC2 expose
// the lex form used to index condensed pairwise-distance vectors.
package combin
