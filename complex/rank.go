// SPDX-License-Identifier: MIT
// Package: splex/complex
//
// rank.go — RankComplex: simplices as colex ranks in roaring bitmaps.

package complex

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/roaring64"

	"github.com/katalvlaran/splex/combin"
	"github.com/katalvlaran/splex/simplex"
)

// RankComplex stores each p-simplex as its colex rank in ranks[p]. A
// vertex posting index (vertex → per-dimension ranks of the simplices
// containing it) answers coface queries by bitmap intersection; with
// WithLinearCofaces the index is not kept and cofaces are found by
// unranking and testing every simplex of higher dimension.
type RankComplex struct {
	ranks   []*roaring64.Bitmap
	posting map[int][]*roaring64.Bitmap
	linear  bool
}

var _ Complex = (*RankComplex)(nil)

// RankOption configures a RankComplex.
type RankOption func(*RankComplex)

// WithLinearCofaces drops the posting index: less memory, linear-time
// coface discovery on Remove, Discard and Cofaces.
func WithLinearCofaces() RankOption {
	return func(c *RankComplex) {
		c.linear = true
		c.posting = nil
	}
}

// NewRank returns an empty rank complex.
func NewRank(opts ...RankOption) *RankComplex {
	c := &RankComplex{posting: make(map[int][]*roaring64.Bitmap)}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// rankedFace is a face with its colex rank.
type rankedFace struct {
	s simplex.Simplex
	r uint64
}

// Add ranks s and all of its faces, then unions them into the store.
// Nothing is stored if any rank overflows.
// Complexity: O(2^k · k²) ranking plus bitmap inserts.
func (c *RankComplex) Add(s simplex.Simplex) error {
	if s.IsEmpty() {
		return nil
	}
	faces := s.AllFaces()
	ranked := make([]rankedFace, len(faces))
	for i, f := range faces {
		r, err := combin.RankColex(f.Vertices())
		if err != nil {
			return fmt.Errorf("RankComplex.Add(%v): %w", s, err)
		}
		ranked[i] = rankedFace{s: f, r: r}
	}

	for _, rf := range ranked {
		p := rf.s.Dim()
		for len(c.ranks) <= p {
			c.ranks = append(c.ranks, roaring64.NewBitmap())
		}
		if !c.ranks[p].CheckedAdd(rf.r) || c.linear {
			continue
		}
		for i := 0; i < rf.s.Len(); i++ {
			c.postingFor(rf.s.At(i), p).Add(rf.r)
		}
	}

	return nil
}

// postingFor returns the posting bitmap of vertex v at dimension p, growing it as needed.
func (c *RankComplex) postingFor(v, p int) *roaring64.Bitmap {
	list := c.posting[v]
	for len(list) <= p {
		list = append(list, roaring64.NewBitmap())
	}
	c.posting[v] = list

	return list[p]
}

// rankOf ranks s; ok is false when the rank overflows, in which case s
// cannot be stored.
func rankOf(s simplex.Simplex) (uint64, bool) {
	r, err := combin.RankColex(s.Vertices())
	return r, err == nil
}

// Contains reports membership by a bitmap lookup on the rank of s.
// Complexity: O(k²) ranking plus O(log n) lookup.
func (c *RankComplex) Contains(s simplex.Simplex) bool {
	if s.IsEmpty() {
		return true
	}
	p := s.Dim()
	if p >= len(c.ranks) {
		return false
	}
	r, ok := rankOf(s)

	return ok && c.ranks[p].Contains(r)
}

// Remove deletes s and its cofaces; ErrSimplexNotFound if s is absent.
func (c *RankComplex) Remove(s simplex.Simplex) error {
	if !c.Contains(s) {
		return fmt.Errorf("RankComplex.Remove(%v): %w", s, ErrSimplexNotFound)
	}
	c.Discard(s)

	return nil
}

// Discard deletes s and its cofaces when present.
func (c *RankComplex) Discard(s simplex.Simplex) {
	if s.IsEmpty() {
		c.ranks = nil
		if !c.linear {
			c.posting = make(map[int][]*roaring64.Bitmap)
		}
		return
	}
	if !c.Contains(s) {
		return
	}
	touched := make(map[int]struct{})
	for p, bm := range c.cofaceRanks(s) {
		if bm == nil {
			continue
		}
		c.ranks[p].AndNot(bm)
		if c.linear {
			continue
		}
		it := bm.Iterator()
		for it.HasNext() {
			r := it.Next()
			f := mustUnrank(r, p+1)
			for i := 0; i < f.Len(); i++ {
				v := f.At(i)
				c.posting[v][p].Remove(r)
				touched[v] = struct{}{}
			}
		}
	}
	c.trim(touched)
}

// cofaceRanks returns, per dimension q ≥ dim(s), the ranks of the cofaces
// of s. Entries below dim(s) are nil.
func (c *RankComplex) cofaceRanks(s simplex.Simplex) []*roaring64.Bitmap {
	out := make([]*roaring64.Bitmap, len(c.ranks))
	for q := max(s.Dim(), 0); q < len(c.ranks); q++ {
		if c.linear {
			out[q] = c.scanCofaces(s, q)
			continue
		}
		var acc *roaring64.Bitmap
		for i := 0; i < s.Len(); i++ {
			list := c.posting[s.At(i)]
			if len(list) <= q {
				acc = roaring64.NewBitmap()
				break
			}
			if acc == nil {
				acc = list[q].Clone()
			} else {
				acc.And(list[q])
			}
		}
		if acc == nil { // empty s: every q-simplex
			acc = c.ranks[q].Clone()
		}
		out[q] = acc
	}

	return out
}

// scanCofaces unranks every q-simplex and keeps the supersets of s.
func (c *RankComplex) scanCofaces(s simplex.Simplex, q int) *roaring64.Bitmap {
	bm := roaring64.NewBitmap()
	it := c.ranks[q].Iterator()
	for it.HasNext() {
		r := it.Next()
		if s.IsFaceOf(mustUnrank(r, q+1)) {
			bm.Add(r)
		}
	}

	return bm
}

// trim drops empty trailing dimensions from the store and from the
// posting lists of the touched vertices.
func (c *RankComplex) trim(touched map[int]struct{}) {
	for len(c.ranks) > 0 && c.ranks[len(c.ranks)-1].IsEmpty() {
		c.ranks = c.ranks[:len(c.ranks)-1]
	}
	for v := range touched {
		list := c.posting[v]
		for len(list) > 0 && list[len(list)-1].IsEmpty() {
			list = list[:len(list)-1]
		}
		if len(list) == 0 {
			delete(c.posting, v)
		} else {
			c.posting[v] = list
		}
	}
}

// mustUnrank decodes a stored rank. Stored ranks always come from valid
// combinations, so a failure means the store is corrupt.
func mustUnrank(r uint64, k int) simplex.Simplex {
	vs, err := combin.UnrankColex(r, k)
	if err != nil {
		panic(fmt.Sprintf("complex: corrupt rank %d for k=%d: %v", r, k, err))
	}
	s, err := simplex.FromSorted(vs)
	if err != nil {
		panic(fmt.Sprintf("complex: corrupt rank %d for k=%d: %v", r, k, err))
	}

	return s
}

// Faces unranks the p-simplices in increasing colex rank.
// Complexity: O(card(p)) unrankings.
func (c *RankComplex) Faces(p int) []simplex.Simplex {
	if p < 0 || p >= len(c.ranks) {
		return nil
	}
	out := make([]simplex.Simplex, 0, c.ranks[p].GetCardinality())
	it := c.ranks[p].Iterator()
	for it.HasNext() {
		out = append(out, mustUnrank(it.Next(), p+1))
	}

	return out
}

// Simplices returns every simplex by dimension, then colex rank.
func (c *RankComplex) Simplices() []simplex.Simplex {
	out := make([]simplex.Simplex, 0, c.Len())
	for p := range c.ranks {
		out = append(out, c.Faces(p)...)
	}

	return out
}

// All iterates the simplices lazily, unranking on demand.
func (c *RankComplex) All() iter.Seq[simplex.Simplex] {
	return func(yield func(simplex.Simplex) bool) {
		for p, bm := range c.ranks {
			it := bm.Iterator()
			for it.HasNext() {
				if !yield(mustUnrank(it.Next(), p+1)) {
					return
				}
			}
		}
	}
}

// Cofaces returns the cofaces of s by dimension, then lexicographically.
func (c *RankComplex) Cofaces(s simplex.Simplex) []simplex.Simplex {
	if !c.Contains(s) {
		return nil
	}
	var out []simplex.Simplex
	for q, bm := range c.cofaceRanks(s) {
		if bm == nil {
			continue
		}
		it := bm.Iterator()
		for it.HasNext() {
			out = append(out, mustUnrank(it.Next(), q+1))
		}
	}

	return sortedCofaces(out)
}

// Ranks returns a copy of the colex ranks of the p-simplices in increasing order.
func (c *RankComplex) Ranks(p int) []uint64 {
	if p < 0 || p >= len(c.ranks) {
		return nil
	}

	return c.ranks[p].ToArray()
}

// Card returns the number of p-simplices.
func (c *RankComplex) Card(p int) int {
	if p < 0 || p >= len(c.ranks) {
		return 0
	}

	return int(c.ranks[p].GetCardinality())
}

// Shape returns the per-dimension counts.
func (c *RankComplex) Shape() []int {
	var out []int
	for p := range c.ranks {
		out = append(out, c.Card(p))
	}

	return out
}

// Dim returns the largest dimension, or -1.
func (c *RankComplex) Dim() int { return len(c.ranks) - 1 }

// Len returns the number of simplices.
func (c *RankComplex) Len() int { return sumInts(c.Shape()) }

// String summarizes the complex.
func (c *RankComplex) String() string { return Summary("complex", c.Shape()) }
