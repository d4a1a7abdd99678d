// SPDX-License-Identifier: MIT
// Package: splex/geometry
//
// rips.go — Vietoris–Rips complexes, flag and lower-star weights.

package geometry

import (
	"fmt"

	"github.com/katalvlaran/splex/combin"
	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/filtration"
	"github.com/katalvlaran/splex/simplex"
	"github.com/katalvlaran/splex/simplextree"
)

// Rips builds the Rips complex of pd at radius r up to dimension maxDim:
// all n vertices, the edges with d ≤ 2r, then Expand(maxDim).
// Complexity: O(n²) for the 1-skeleton plus the output-sensitive expansion.
func Rips(pd []float64, radius float64, maxDim int, opts ...Option) (*simplextree.Tree, error) {
	o := resolve(opts)
	n, err := pointCount(pd)
	if err != nil {
		return nil, fmt.Errorf("Rips: %w", err)
	}
	if radius < 0 {
		return nil, fmt.Errorf("Rips(r=%v): %w", radius, ErrNegativeRadius)
	}
	if maxDim < 0 {
		return nil, fmt.Errorf("Rips(dim=%d): %w", maxDim, simplextree.ErrInvalidDimension)
	}

	st := simplextree.New()
	for v := 0; v < n; v++ {
		st.Insert(simplex.MustNew(v))
	}
	threshold := 2 * radius
	for x, d := range pd {
		if d > threshold || maxDim < 1 {
			continue
		}
		i, j, err := combin.UnrankC2(uint64(x), n)
		if err != nil {
			return nil, fmt.Errorf("Rips: %w", err)
		}
		st.Insert(simplex.MustNew(i, j))
	}
	o.logger.Debug("rips 1-skeleton", "points", n, "radius", radius, "shape", st.NSimplices())

	if maxDim > 1 {
		if err := st.Expand(maxDim); err != nil {
			return nil, fmt.Errorf("Rips: %w", err)
		}
	}
	o.logger.Debug("rips expanded", "dim", maxDim, "shape", st.NSimplices())

	return st, nil
}

// FlagWeight returns the clique weight over pd: a vertex weighs its vertex
// weight (0 when vertexWeights is nil), a higher simplex the largest of its
// edge lengths and vertex weights. The returned function panics on a
// vertex outside the point set.
func FlagWeight(pd []float64, vertexWeights []float64) (func(simplex.Simplex) float64, error) {
	n, err := pointCount(pd)
	if err != nil {
		return nil, fmt.Errorf("FlagWeight: %w", err)
	}
	if vertexWeights == nil {
		vertexWeights = make([]float64, n)
	}
	if len(vertexWeights) != n {
		return nil, fmt.Errorf("FlagWeight: %d weights for %d points: %w", len(vertexWeights), n, ErrWeightCount)
	}
	vw := append([]float64(nil), vertexWeights...)

	return func(s simplex.Simplex) float64 {
		w := LowerStar(vw)(s)
		for a := 0; a < s.Len(); a++ {
			for b := a + 1; b < s.Len(); b++ {
				w = max(w, distanceAt(pd, s.At(a), s.At(b), n))
			}
		}
		return w
	}, nil
}

// LowerStar returns the lower-star weight of a vertex function: the largest
// weight among a simplex's vertices.
func LowerStar(weights []float64) func(simplex.Simplex) float64 {
	return func(s simplex.Simplex) float64 {
		if s.IsEmpty() {
			return 0
		}
		w := weights[s.At(0)]
		for i := 1; i < s.Len(); i++ {
			w = max(w, weights[s.At(i)])
		}
		return w
	}
}

// RipsFiltration builds the Rips complex and keys it with FlagWeight.
func RipsFiltration(pd []float64, radius float64, maxDim int, b filtration.Backend, opts ...Option) (*filtration.Filtration[float64], error) {
	st, err := Rips(pd, radius, maxDim, opts...)
	if err != nil {
		return nil, fmt.Errorf("RipsFiltration: %w", err)
	}
	w, err := FlagWeight(pd, nil)
	if err != nil {
		return nil, fmt.Errorf("RipsFiltration: %w", err)
	}
	f, err := filtration.FromComplex(complex.WrapTree(st), w, b)
	if err != nil {
		return nil, fmt.Errorf("RipsFiltration: %w", err)
	}
	resolve(opts).logger.Debug("rips filtration", "simplices", f.Len(), "backend", b)

	return f, nil
}
