// SPDX-License-Identifier: MIT
// Package: splex/filtration
//
// filtration.go — Filtration[K]: storage, ordering and queries.

package filtration

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/splex/combin"
	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/simplex"
)

// Backend selects how simplices are stored and how key ties are broken.
type Backend uint8

const (
	// Set stores simplices in an ordered set; ties break lexicographically.
	Set Backend = iota
	// Rank stores colex ranks in bitmaps; ties break by colex rank.
	Rank
)

// String returns the canonical tag of b.
func (b Backend) String() string {
	switch b {
	case Set:
		return "set"
	case Rank:
		return "rank"
	}

	return fmt.Sprintf("Backend(%d)", uint8(b))
}

// ParseBackend maps "set" and "rank" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "set":
		return Set, nil
	case "rank":
		return Rank, nil
	}

	return 0, fmt.Errorf("ParseBackend(%q): %w", s, ErrUnknownBackend)
}

const btreeDegree = 16

// entry is one simplex with its key; rank is its colex rank under the
// Rank backend and zero otherwise.
type entry[K constraints.Ordered] struct {
	key  K
	s    simplex.Simplex
	rank uint64
}

// Filtration is a complex with a monotone key per simplex.
type Filtration[K constraints.Ordered] struct {
	backend Backend
	c       complex.Complex
	order   *btree.BTreeG[entry[K]]
	byKey   map[simplex.Key]entry[K]

	// snapshot of order with positions; nil after any mutation.
	snap []entry[K]
	pos  map[simplex.Key]int
}

// New returns an empty filtration on backend b.
func New[K constraints.Ordered](b Backend) (*Filtration[K], error) {
	var c complex.Complex
	switch b {
	case Set:
		c = complex.NewSet()
	case Rank:
		c = complex.NewRank()
	default:
		return nil, fmt.Errorf("New(%v): %w", b, ErrUnknownBackend)
	}

	return &Filtration[K]{
		backend: b,
		c:       c,
		order:   btree.NewG(btreeDegree, lessFor[K](b)),
		byKey:   make(map[simplex.Key]entry[K]),
	}, nil
}

// lessFor returns the total order of backend b.
func lessFor[K constraints.Ordered](b Backend) btree.LessFunc[entry[K]] {
	return func(x, y entry[K]) bool {
		if c := cmp.Compare(x.key, y.key); c != 0 {
			return c < 0
		}
		if x.s.Len() != y.s.Len() {
			return x.s.Len() < y.s.Len()
		}
		if b == Rank {
			return x.rank < y.rank
		}

		return simplex.CompareLex(x.s, y.s) < 0
	}
}

// newEntry builds the stored form of s, ranking it under the Rank backend.
func (f *Filtration[K]) newEntry(s simplex.Simplex, key K) (entry[K], error) {
	e := entry[K]{key: key, s: s}
	if f.backend == Rank {
		r, err := combin.RankColex(s.Vertices())
		if err != nil {
			return e, err
		}
		e.rank = r
	}

	return e, nil
}

// insert stores e; the caller has checked closure and monotonicity.
func (f *Filtration[K]) insert(e entry[K]) {
	if err := f.c.Add(e.s); err != nil {
		// faces were ranked by newEntry already, so this cannot overflow
		panic(fmt.Sprintf("filtration: add %v: %v", e.s, err))
	}
	f.order.ReplaceOrInsert(e)
	f.byKey[e.s.Key()] = e
	f.snap, f.pos = nil, nil
}

// Backend reports the storage backend.
func (f *Filtration[K]) Backend() Backend { return f.backend }

// Add inserts s with the given key together with its missing faces, which
// receive the same key. It fails with ErrNotMonotone, changing nothing, if
// a face already present has a greater key. Adding a present simplex is a
// no-op that keeps its key.
func (f *Filtration[K]) Add(s simplex.Simplex, key K) error {
	if s.IsEmpty() || f.Contains(s) {
		return nil
	}
	var fresh []entry[K]
	for _, face := range s.AllFaces() {
		if old, ok := f.byKey[face.Key()]; ok {
			if cmp.Compare(old.key, key) > 0 {
				return fmt.Errorf("%s(%v): face %v has key %v > %v: %w",
					methodAdd, s, face, old.key, key, ErrNotMonotone)
			}
			continue
		}
		e, err := f.newEntry(face, key)
		if err != nil {
			return fmt.Errorf("%s(%v): %w", methodAdd, s, err)
		}
		fresh = append(fresh, e)
	}
	for _, e := range fresh {
		f.insert(e)
	}

	return nil
}

// Remove deletes s and its cofaces; ErrSimplexNotFound if s is absent.
func (f *Filtration[K]) Remove(s simplex.Simplex) error {
	if !f.Contains(s) {
		return fmt.Errorf("%s(%v): %w", methodRemove, s, ErrSimplexNotFound)
	}
	f.Discard(s)

	return nil
}

// Discard deletes s and its cofaces when present. Discarding the empty
// simplex empties the filtration.
func (f *Filtration[K]) Discard(s simplex.Simplex) {
	if !f.Contains(s) {
		return
	}
	if s.IsEmpty() {
		f.c.Discard(s)
		f.order.Clear(false)
		clear(f.byKey)
		f.snap, f.pos = nil, nil
		return
	}
	for _, t := range f.c.Cofaces(s) {
		e := f.byKey[t.Key()]
		f.order.Delete(e)
		delete(f.byKey, t.Key())
	}
	f.c.Discard(s)
	f.snap, f.pos = nil, nil
}

// Contains reports membership; the empty simplex is always contained.
func (f *Filtration[K]) Contains(s simplex.Simplex) bool {
	if s.IsEmpty() {
		return true
	}
	_, ok := f.byKey[s.Key()]

	return ok
}

// Key returns the key of s.
func (f *Filtration[K]) Key(s simplex.Simplex) (K, bool) {
	e, ok := f.byKey[s.Key()]
	return e.key, ok
}

// snapshot materializes the order and positions once per mutation epoch.
func (f *Filtration[K]) snapshot() []entry[K] {
	if f.snap != nil || f.order.Len() == 0 {
		return f.snap
	}
	f.snap = make([]entry[K], 0, f.order.Len())
	f.pos = make(map[simplex.Key]int, f.order.Len())
	f.order.Ascend(func(e entry[K]) bool {
		f.pos[e.s.Key()] = len(f.snap)
		f.snap = append(f.snap, e)
		return true
	})

	return f.snap
}

// Index returns the position of s in filtration order.
func (f *Filtration[K]) Index(s simplex.Simplex) (int, bool) {
	f.snapshot()
	i, ok := f.pos[s.Key()]

	return i, ok
}

// Faces returns the p-simplices in filtration order.
func (f *Filtration[K]) Faces(p int) []simplex.Simplex {
	if p < 0 || p > f.Dim() {
		return nil
	}
	out := make([]simplex.Simplex, 0, f.Card(p))
	for _, e := range f.snapshot() {
		if e.s.Dim() == p {
			out = append(out, e.s)
		}
	}

	return out
}

// Simplices returns every simplex in filtration order.
func (f *Filtration[K]) Simplices() []simplex.Simplex {
	snap := f.snapshot()
	out := make([]simplex.Simplex, len(snap))
	for i, e := range snap {
		out[i] = e.s
	}

	return out
}

// Indices returns the keys in filtration order.
func (f *Filtration[K]) Indices() []K {
	snap := f.snapshot()
	out := make([]K, len(snap))
	for i, e := range snap {
		out[i] = e.key
	}

	return out
}

// Entries returns the (simplex, key) pairs in filtration order.
func (f *Filtration[K]) Entries() []simplex.Tagged[K] {
	snap := f.snapshot()
	out := make([]simplex.Tagged[K], len(snap))
	for i, e := range snap {
		out[i] = simplex.Tag(e.s, e.key)
	}

	return out
}

// All iterates (key, simplex) in filtration order over the current
// snapshot; a mutation during iteration does not affect it.
func (f *Filtration[K]) All() iter.Seq2[K, simplex.Simplex] {
	snap := f.snapshot()
	return func(yield func(K, simplex.Simplex) bool) {
		for _, e := range snap {
			if !yield(e.key, e.s) {
				return
			}
		}
	}
}

// Cofaces returns the cofaces of s, s included, in filtration order.
func (f *Filtration[K]) Cofaces(s simplex.Simplex) []simplex.Simplex {
	if s.IsEmpty() {
		return f.Simplices()
	}
	if !f.Contains(s) {
		return nil
	}
	var out []simplex.Simplex
	for _, e := range f.snapshot() {
		if s.IsFaceOf(e.s) {
			out = append(out, e.s)
		}
	}

	return out
}

// Card returns the number of p-simplices.
func (f *Filtration[K]) Card(p int) int { return f.c.Card(p) }

// Shape returns the per-dimension counts.
func (f *Filtration[K]) Shape() []int { return f.c.Shape() }

// Dim returns the largest dimension, or -1 when empty.
func (f *Filtration[K]) Dim() int { return f.c.Dim() }

// Len returns the number of simplices.
func (f *Filtration[K]) Len() int { return f.order.Len() }

// Complex returns a copy of the underlying simplices as a complex of the
// matching backend.
func (f *Filtration[K]) Complex() complex.Complex {
	var c complex.Complex = complex.NewSet()
	if f.backend == Rank {
		c = complex.NewRank()
	}
	for _, e := range f.snapshot() {
		_ = c.Add(e.s) // ranks were checked on insert
	}

	return c
}

// Clone returns an independent copy.
func (f *Filtration[K]) Clone() *Filtration[K] {
	g, _ := New[K](f.backend)
	for _, e := range f.snapshot() {
		g.insert(e)
	}

	return g
}

// String summarizes the filtration as
// "3-d filtered complex with (4, 6, 4, 1)-simplices of dimension (0, 1, 2, 3)".
func (f *Filtration[K]) String() string {
	return complex.Summary("filtered complex", f.Shape())
}
