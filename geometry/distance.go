// SPDX-License-Identifier: MIT
// Package: splex/geometry
//
// distance.go — condensed pairwise distances and the enclosing radius.

package geometry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/splex/combin"
)

// PairwiseDistances returns the condensed Euclidean distances of points.
// Complexity: O(n²·d).
func PairwiseDistances(points [][]float64) ([]float64, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("PairwiseDistances: %d points: %w", n, ErrNoPoints)
	}
	d := len(points[0])
	for i, p := range points {
		if len(p) != d {
			return nil, fmt.Errorf("PairwiseDistances: point %d has %d coordinates, want %d: %w", i, len(p), d, ErrRaggedPoints)
		}
	}

	pd := make([]float64, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r, err := combin.RankC2(i, j, n)
			if err != nil {
				return nil, fmt.Errorf("PairwiseDistances: %w", err)
			}
			pd[r] = euclidean(points[i], points[j])
		}
	}

	return pd, nil
}

func euclidean(a, b []float64) float64 {
	var s float64
	for k := range a {
		diff := a[k] - b[k]
		s += diff * diff
	}

	return math.Sqrt(s)
}

// pointCount validates pd and returns n with C(n,2) = len(pd).
func pointCount(pd []float64) (int, error) {
	n, err := combin.InverseChoose(uint64(len(pd)), 2)
	if err != nil {
		return 0, fmt.Errorf("%d distances: %w", len(pd), ErrBadDistances)
	}
	for i, v := range pd {
		if v < 0 || math.IsNaN(v) {
			return 0, fmt.Errorf("distance %d is %v: %w", i, v, ErrBadDistances)
		}
	}

	return n, nil
}

// distanceAt reads d(i,j) from a condensed vector over n points.
func distanceAt(pd []float64, i, j, n int) float64 {
	if i == j {
		return 0
	}
	r, err := combin.RankC2(i, j, n)
	if err != nil {
		panic(fmt.Sprintf("geometry: pair (%d,%d) outside %d points: %v", i, j, n, err))
	}

	return pd[r]
}

// EnclosingRadius returns half the smallest eccentricity: the least r at
// which some point's ball of radius 2r covers every other point, making
// the Rips complex a cone.
// Complexity: O(n²).
func EnclosingRadius(pd []float64) (float64, error) {
	n, err := pointCount(pd)
	if err != nil {
		return 0, fmt.Errorf("EnclosingRadius: %w", err)
	}
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		ecc := 0.0
		for j := 0; j < n; j++ {
			ecc = max(ecc, distanceAt(pd, i, j, n))
		}
		best = min(best, ecc)
	}

	return best / 2, nil
}
