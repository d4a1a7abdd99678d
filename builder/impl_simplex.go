// SPDX-License-Identifier: MIT
// Package: splex/builder
//
// impl_simplex.go — FullSimplex, Skeleton and Sphere.
//
// All three are views of the (n-1)-simplex on indices 0..n-1:
//   • FullSimplex(n): the simplex itself.
//   • Skeleton(n, k): its (k+1)-subsets, in lex order.
//   • Sphere(d):      its facets for n = d+2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/splex/complex"
)

// FullSimplex returns a Constructor adding the (n-1)-simplex on n vertices.
// Complexity: O(2^n) faces.
func FullSimplex(n int) Constructor {
	return func(c complex.Complex, cfg builderConfig) error {
		// Validate parameter domain before the first Add.
		if n < MinSimplexVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFullSimplex, n, MinSimplexVertices, ErrTooFewVertices)
		}

		// The only (n-1)-face of (0..n-1) is the simplex itself; Add closes it downward.
		return addSimplices(c, cfg, methodFullSimplex, indexSimplex(n).Faces(n-1))
	}
}

// Skeleton returns a Constructor adding the k-skeleton of the (n-1)-simplex:
// every (k+1)-subset of n vertices. 0 ≤ k < n.
// Complexity: O(C(n, k+1)·2^(k+1)).
func Skeleton(n, k int) Constructor {
	return func(c complex.Complex, cfg builderConfig) error {
		// Validate the vertex count first, then the dimension against it.
		if n < MinSimplexVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSkeleton, n, MinSimplexVertices, ErrTooFewVertices)
		}
		if k < 0 || k >= n {
			return fmt.Errorf("%s: k=%d not in [0,%d]: %w", methodSkeleton, k, n-1, ErrInvalidDimension)
		}

		// Add every (k+1)-subset in lex order; lower faces come with each Add.
		return addSimplices(c, cfg, methodSkeleton, indexSimplex(n).Faces(k))
	}
}

// Sphere returns a Constructor adding the boundary of the (d+1)-simplex,
// a d-sphere on d+2 vertices. d ≥ 0.
func Sphere(d int) Constructor {
	return func(c complex.Complex, cfg builderConfig) error {
		// A d-sphere needs d ≥ 0 (the 0-sphere is two points).
		if d < 0 {
			return fmt.Errorf("%s: d=%d < 0: %w", methodSphere, d, ErrTooFewVertices)
		}

		// The facets of the (d+1)-simplex on d+2 vertices, without its interior.
		return addSimplices(c, cfg, methodSphere, indexSimplex(d+2).Boundary())
	}
}
