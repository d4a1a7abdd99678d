// SPDX-License-Identifier: MIT
// Package: splex/boundary
//
// boundary.go — per-dimension, full and sequenced boundary matrices.

package boundary

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/splex/matrix"
	"github.com/katalvlaran/splex/simplex"
)

// Source is anything that enumerates its simplices by dimension: every
// complex backend and every filtration.
type Source interface {
	Faces(p int) []simplex.Simplex
	Simplices() []simplex.Simplex
	Dim() int
}

// sign of the i-th facet in lexicographic enumeration.
func sign(i int) int8 {
	if i%2 == 0 {
		return 1
	}

	return -1
}

// rowIndex maps simplices to their position.
func rowIndex(ss []simplex.Simplex) map[simplex.Key]int {
	idx := make(map[simplex.Key]int, len(ss))
	for i, s := range ss {
		idx[s.Key()] = i
	}

	return idx
}

// columns emits the signed facet entries of cols against rows.
func columns(rows map[simplex.Key]int, cols []simplex.Simplex) ([]matrix.Entry, error) {
	entries := make([]matrix.Entry, 0, len(cols)*2)
	for j, s := range cols {
		if s.Len() < 2 {
			continue
		}
		for i, f := range s.Boundary() {
			r, ok := rows[f.Key()]
			if !ok {
				return nil, fmt.Errorf("facet %v of %v: %w", f, s, ErrMissingFace)
			}
			entries = append(entries, matrix.Entry{Row: r, Col: j, Val: sign(i)})
		}
	}

	return entries, nil
}

// Matrix returns ∂_p of src: card(p-1) rows by card(p) columns.
// Complexity: O(card(p)·(p+1)) map lookups plus matrix assembly.
func Matrix(src Source, p int) (*matrix.Sparse, error) {
	if p < 0 {
		return nil, fmt.Errorf("Matrix(p=%d): %w", p, ErrNegativeDimension)
	}
	cols := src.Faces(p)
	if p == 0 {
		return matrix.NewSparse(0, len(cols), nil)
	}
	rows := src.Faces(p - 1)
	entries, err := columns(rowIndex(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("Matrix(p=%d): %w", p, err)
	}

	return matrix.NewSparse(len(rows), len(cols), entries)
}

// Full returns the square boundary matrix over all simplices in
// src.Simplices() order.
func Full(src Source) (*matrix.Sparse, error) {
	all := src.Simplices()
	entries, err := columns(rowIndex(all), all)
	if err != nil {
		return nil, fmt.Errorf("Full: %w", err)
	}

	return matrix.NewSparse(len(all), len(all), entries)
}

// Seq yields ∂_p for each p in ps, or for p = 0..Dim() when ps is empty.
// It stops after the first error.
func Seq(src Source, ps ...int) iter.Seq2[*matrix.Sparse, error] {
	if len(ps) == 0 {
		for p := 0; p <= src.Dim(); p++ {
			ps = append(ps, p)
		}
	}

	return func(yield func(*matrix.Sparse, error) bool) {
		for _, p := range ps {
			m, err := Matrix(src, p)
			if !yield(m, err) || err != nil {
				return
			}
		}
	}
}

// UpLaplacian returns ∂_{p+1}·∂_{p+1}ᵀ, a card(p)×card(p) matrix.
func UpLaplacian(src Source, p int) (*matrix.Dense, error) {
	if p < 0 {
		return nil, fmt.Errorf("UpLaplacian(p=%d): %w", p, ErrNegativeDimension)
	}
	d, err := Matrix(src, p+1)
	if err != nil {
		return nil, fmt.Errorf("UpLaplacian(p=%d): %w", p, err)
	}
	return matrix.Mul(d, d.Transpose())
}
