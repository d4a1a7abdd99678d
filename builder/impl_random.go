// SPDX-License-Identifier: MIT
// Package: splex/builder
//
// impl_random.go — RandomComplex(n, maxDim, p).
//
// Canonical model (random clique-closed growth):
//   • All n vertices are present.
//   • For k = 1..maxDim, every (k+1)-subset of indices, in lex order, whose
//     facets were all kept is kept with probability p.
//
// Contract:
//   • n ≥ 1, 0 ≤ maxDim < n, 0 ≤ p ≤ 1.
//   • cfg.rng is required when 0 < p < 1.
//
// Determinism: stable trial order (dimension asc, lex within a dimension).

package builder

import (
	"fmt"

	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/simplex"
)

// RandomComplex returns a Constructor sampling a random complex on n
// vertices up to dimension maxDim.
// Complexity: O(Σ_k C(n, k+1)·k) trials and facet checks.
func RandomComplex(n, maxDim int, p float64) Constructor {
	return func(c complex.Complex, cfg builderConfig) error {
		// Validate all parameters before drawing from the rng.
		if n < MinSimplexVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomComplex, n, MinSimplexVertices, ErrTooFewVertices)
		}
		if maxDim < 0 || maxDim >= n {
			return fmt.Errorf("%s: maxDim=%d not in [0,%d]: %w", methodRandomComplex, maxDim, n-1, ErrInvalidDimension)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomComplex, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		// p ∈ {0, 1} is deterministic and needs no rng.
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomComplex, ErrNeedRandSource)
		}

		// kept tracks index simplices, independent of labelling.
		kept := make(map[simplex.Key]struct{})
		all := indexSimplex(n)

		// Every vertex is present regardless of p.
		for _, v := range all.Faces(0) {
			kept[v.Key()] = struct{}{}
			if err := addIndices(c, cfg, methodRandomComplex, v.Vertices()...); err != nil {
				return err
			}
		}
		// Grow dimension by dimension; candidates come in lex order.
		for k := 1; k <= maxDim; k++ {
			for _, s := range all.Faces(k) {
				// Only simplices whose facets all survived can be kept.
				if !facetsKept(kept, s) {
					continue
				}
				// One Bernoulli(p) trial per candidate; no draw for p ∈ {0, 1}.
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				// Record by index key, then add under its labels.
				kept[s.Key()] = struct{}{}
				if err := addIndices(c, cfg, methodRandomComplex, s.Vertices()...); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// facetsKept reports whether every facet of s is in kept.
func facetsKept(kept map[simplex.Key]struct{}, s simplex.Simplex) bool {
	for _, f := range s.Boundary() {
		if _, ok := kept[f.Key()]; !ok {
			return false
		}
	}

	return true
}
