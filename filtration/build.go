// SPDX-License-Identifier: MIT
// Package: splex/filtration
//
// build.go — constructors from complexes and (simplex, key) pairs.

package filtration

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/simplex"
)

// FromComplex keys every simplex of c with key. The keys must be monotone:
// key(face) ≤ key(σ) for every facet of every σ.
// Complexity: O(n·k) key calls and checks plus O(n log n) ordering.
func FromComplex[K constraints.Ordered](c complex.Complex, key func(simplex.Simplex) K, b Backend) (*Filtration[K], error) {
	f, err := New[K](b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromComplex, err)
	}
	// c.Simplices() lists faces before cofaces, so facets are already keyed.
	for _, s := range c.Simplices() {
		k := key(s)
		if err := f.checkFacets(s, k); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromComplex, err)
		}
		e, err := f.newEntry(s, k)
		if err != nil {
			return nil, fmt.Errorf("%s(%v): %w", methodFromComplex, s, err)
		}
		f.insert(e)
	}

	return f, nil
}

// Enumerate keys the simplices of c by their position in c.Simplices().
func Enumerate(c complex.Complex, b Backend) (*Filtration[int], error) {
	pos := make(map[simplex.Key]int, c.Len())
	for i, s := range c.Simplices() {
		pos[s.Key()] = i
	}

	return FromComplex(c, func(s simplex.Simplex) int { return pos[s.Key()] }, b)
}

// FromPairs builds a filtration from explicit (simplex, key) pairs. Every
// facet of a listed simplex must be listed too, with a key no greater.
// Empty simplices are ignored.
func FromPairs[K constraints.Ordered](pairs []simplex.Tagged[K], b Backend) (*Filtration[K], error) {
	f, err := New[K](b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromPairs, err)
	}
	keys := make(map[simplex.Key]K, len(pairs))
	sorted := make([]simplex.Tagged[K], 0, len(pairs))
	for _, p := range pairs {
		if p.IsEmpty() {
			continue
		}
		if _, dup := keys[p.Key()]; dup {
			return nil, fmt.Errorf("%s: %v: %w", methodFromPairs, p.Simplex, ErrDuplicateSimplex)
		}
		keys[p.Key()] = p.Value
		sorted = append(sorted, p)
	}
	for _, p := range sorted {
		for _, facet := range p.Boundary() {
			fk, ok := keys[facet.Key()]
			if !ok {
				return nil, fmt.Errorf("%s: facet %v of %v: %w", methodFromPairs, facet, p.Simplex, ErrNotClosed)
			}
			if cmp.Compare(fk, p.Value) > 0 {
				return nil, fmt.Errorf("%s: facet %v key %v > %v key %v: %w",
					methodFromPairs, facet, fk, p.Simplex, p.Value, ErrNotMonotone)
			}
		}
	}
	slices.SortStableFunc(sorted, func(x, y simplex.Tagged[K]) int { return x.Len() - y.Len() })
	for _, p := range sorted {
		e, err := f.newEntry(p.Simplex, p.Value)
		if err != nil {
			return nil, fmt.Errorf("%s(%v): %w", methodFromPairs, p.Simplex, err)
		}
		f.insert(e)
	}

	return f, nil
}

// checkFacets verifies that every facet of s is present with key ≤ k.
func (f *Filtration[K]) checkFacets(s simplex.Simplex, k K) error {
	for _, facet := range s.Boundary() {
		e, ok := f.byKey[facet.Key()]
		if !ok {
			return fmt.Errorf("facet %v of %v: %w", facet, s, ErrNotClosed)
		}
		if cmp.Compare(e.key, k) > 0 {
			return fmt.Errorf("facet %v key %v > %v key %v: %w", facet, e.key, s, k, ErrNotMonotone)
		}
	}

	return nil
}
