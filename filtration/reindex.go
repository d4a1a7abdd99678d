// SPDX-License-Identifier: MIT
// Package: splex/filtration
//
// reindex.go — whole-filtration key replacement and validation.

package filtration

import (
	"cmp"
	"fmt"

	"github.com/google/btree"

	"github.com/katalvlaran/splex/simplex"
)

// Reindex replaces the keys: keys[i] becomes the key of the i-th simplex in
// the current order. keys must have Len elements and be non-decreasing.
// On error the filtration is unchanged.
func (f *Filtration[K]) Reindex(keys []K) error {
	snap := f.snapshot()
	if len(keys) != len(snap) {
		return fmt.Errorf("%s: %d keys for %d simplices: %w", methodReindex, len(keys), len(snap), ErrLengthMismatch)
	}
	for i := 1; i < len(keys); i++ {
		if cmp.Compare(keys[i], keys[i-1]) < 0 {
			return fmt.Errorf("%s: key %d (%v) < key %d (%v): %w", methodReindex, i, keys[i], i-1, keys[i-1], ErrNotMonotone)
		}
	}
	f.rebuild(func(i int, _ entry[K]) K { return keys[i] })

	return nil
}

// ReindexFunc recomputes every key with fn and re-sorts. The new keys must
// be monotone on faces; on error the filtration is unchanged.
func (f *Filtration[K]) ReindexFunc(fn func(simplex.Simplex) K) error {
	snap := f.snapshot()
	next := make(map[simplex.Key]K, len(snap))
	for _, e := range snap {
		next[e.s.Key()] = fn(e.s)
	}
	for _, e := range snap {
		k := next[e.s.Key()]
		for _, facet := range e.s.Boundary() {
			if fk := next[facet.Key()]; cmp.Compare(fk, k) > 0 {
				return fmt.Errorf("%s: facet %v key %v > %v key %v: %w",
					methodReindexFunc, facet, fk, e.s, k, ErrNotMonotone)
			}
		}
	}
	f.rebuild(func(_ int, e entry[K]) K { return next[e.s.Key()] })

	return nil
}

// rebuild re-keys every entry in the current order and re-sorts.
func (f *Filtration[K]) rebuild(key func(i int, e entry[K]) K) {
	snap := f.snapshot()
	order := btree.NewG(btreeDegree, lessFor[K](f.backend))
	byKey := make(map[simplex.Key]entry[K], len(snap))
	for i, e := range snap {
		e.key = key(i, e)
		order.ReplaceOrInsert(e)
		byKey[e.s.Key()] = e
	}
	f.order, f.byKey = order, byKey
	f.snap, f.pos = nil, nil
}

// Validate checks, in filtration order, that every facet of each simplex
// is present, has a key no greater, and sits at an earlier position.
// Complexity: O(n·k).
func (f *Filtration[K]) Validate() error {
	for i, e := range f.snapshot() {
		for _, facet := range e.s.Boundary() {
			j, ok := f.pos[facet.Key()]
			if !ok {
				return fmt.Errorf("%s: facet %v of %v: %w", methodValidate, facet, e.s, ErrNotClosed)
			}
			if j > i || cmp.Compare(f.byKey[facet.Key()].key, e.key) > 0 {
				return fmt.Errorf("%s: facet %v at %d, %v at %d: %w", methodValidate, facet, j, e.s, i, ErrNotMonotone)
			}
		}
	}
	if f.Len() != f.c.Len() {
		return fmt.Errorf("%s: %d keyed simplices, %d stored: %w", methodValidate, f.Len(), f.c.Len(), ErrNotClosed)
	}

	return nil
}
