// SPDX-License-Identifier: MIT
// Package: splex/complex
//
// set.go — SetComplex, the ordered-set reference backend.

package complex

import (
	"fmt"
	"iter"

	"github.com/google/btree"

	"github.com/katalvlaran/splex/simplex"
)

// btreeDegree is the B-tree branching factor.
const btreeDegree = 16

// SetComplex holds simplices in a B-tree ordered by (dimension, vertex
// tuple), with per-dimension counts kept alongside.
type SetComplex struct {
	items  *btree.BTreeG[simplex.Simplex]
	counts []int
}

var _ Complex = (*SetComplex)(nil)

// NewSet returns a set complex holding the closure of ss.
func NewSet(ss ...simplex.Simplex) *SetComplex {
	c := &SetComplex{items: btree.NewG(btreeDegree, simplex.Less)}
	for _, s := range ss {
		c.add(s)
	}

	return c
}

// Add inserts s and its missing faces. It never fails.
// Complexity: O(2^k log n) for a k-vertex simplex.
func (c *SetComplex) Add(s simplex.Simplex) error {
	c.add(s)
	return nil
}

func (c *SetComplex) add(s simplex.Simplex) {
	if s.IsEmpty() || c.items.Has(s) {
		return
	}
	for _, f := range s.AllFaces() {
		if _, replaced := c.items.ReplaceOrInsert(f); !replaced {
			for len(c.counts) <= f.Dim() {
				c.counts = append(c.counts, 0)
			}
			c.counts[f.Dim()]++
		}
	}
}

// Remove deletes s and all of its cofaces.
// Complexity: O(m log n) where m is the number of simplices ordered at or after s.
func (c *SetComplex) Remove(s simplex.Simplex) error {
	if !c.Contains(s) {
		return fmt.Errorf("SetComplex.Remove(%v): %w", s, ErrSimplexNotFound)
	}
	c.Discard(s)

	return nil
}

// Discard deletes s and its cofaces when present.
func (c *SetComplex) Discard(s simplex.Simplex) {
	if s.IsEmpty() {
		c.items.Clear(false)
		c.counts = nil
		return
	}
	if !c.items.Has(s) {
		return
	}
	for _, f := range c.Cofaces(s) {
		c.items.Delete(f)
		c.counts[f.Dim()]--
	}
	c.counts = trimShape(c.counts)
}

// Contains reports membership. The empty face is always contained.
// Complexity: O(k log n).
func (c *SetComplex) Contains(s simplex.Simplex) bool {
	return s.IsEmpty() || c.items.Has(s)
}

// Faces returns the p-simplices in lexicographic order.
// Complexity: O(log n + card(p)).
func (c *SetComplex) Faces(p int) []simplex.Simplex {
	if p < 0 || p >= len(c.counts) {
		return nil
	}
	out := make([]simplex.Simplex, 0, c.counts[p])
	c.items.AscendGreaterOrEqual(firstOfDim(p), func(s simplex.Simplex) bool {
		if s.Dim() != p {
			return false
		}
		out = append(out, s)
		return true
	})

	return out
}

// firstOfDim is (0,1,...,p), the least p-simplex in (dimension, lex) order.
func firstOfDim(p int) simplex.Simplex {
	vs := make([]int, p+1)
	for i := range vs {
		vs[i] = i
	}
	s, _ := simplex.FromSorted(vs)

	return s
}

// Simplices returns every simplex by dimension, then lexicographically.
func (c *SetComplex) Simplices() []simplex.Simplex {
	out := make([]simplex.Simplex, 0, c.items.Len())
	c.items.Ascend(func(s simplex.Simplex) bool {
		out = append(out, s)
		return true
	})

	return out
}

// All iterates the simplices in order without copying them out first.
func (c *SetComplex) All() iter.Seq[simplex.Simplex] {
	return func(yield func(simplex.Simplex) bool) {
		c.items.Ascend(btree.ItemIteratorG[simplex.Simplex](yield))
	}
}

// Cofaces scans the simplices ordered at or after s and keeps its supersets.
// Complexity: O(m·k) for the m simplices ordered after s.
func (c *SetComplex) Cofaces(s simplex.Simplex) []simplex.Simplex {
	var out []simplex.Simplex
	c.items.AscendGreaterOrEqual(s, func(t simplex.Simplex) bool {
		if s.IsFaceOf(t) {
			out = append(out, t)
		}
		return true
	})

	return out
}

// Card returns the number of p-simplices.
func (c *SetComplex) Card(p int) int {
	if p < 0 || p >= len(c.counts) {
		return 0
	}

	return c.counts[p]
}

// Shape returns the per-dimension counts.
func (c *SetComplex) Shape() []int { return append([]int(nil), c.counts...) }

// Dim returns the largest dimension, or -1.
func (c *SetComplex) Dim() int { return len(c.counts) - 1 }

// Len returns the number of simplices.
func (c *SetComplex) Len() int { return c.items.Len() }

// String summarizes the complex.
func (c *SetComplex) String() string { return Summary("complex", c.counts) }
