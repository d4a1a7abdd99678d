// SPDX-License-Identifier: MIT
// Package: splex/complex
//
// tree.go — TreeComplex, a simplextree.Tree behind the Complex contract.

package complex

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/splex/simplex"
	"github.com/katalvlaran/splex/simplextree"
)

// TreeComplex adapts a simplex tree. Faces(p) come out in lexicographic
// order since the tree's preorder is lexicographic within a dimension.
type TreeComplex struct {
	t *simplextree.Tree
}

var _ Complex = (*TreeComplex)(nil)

// NewTree returns a tree complex holding the closure of ss.
func NewTree(ss ...simplex.Simplex) *TreeComplex {
	return &TreeComplex{t: simplextree.New(ss...)}
}

// WrapTree adopts an existing simplex tree; the complex and the tree share
// storage from then on.
func WrapTree(t *simplextree.Tree) *TreeComplex {
	if t == nil {
		t = simplextree.New()
	}

	return &TreeComplex{t: t}
}

// Tree exposes the underlying simplex tree for traversals, Expand and
// Degree. Mutating it mutates the complex.
func (c *TreeComplex) Tree() *simplextree.Tree { return c.t }

// Add inserts s and its missing faces. It never fails.
func (c *TreeComplex) Add(s simplex.Simplex) error {
	c.t.Insert(s)
	return nil
}

// Remove deletes s and its cofaces; ErrSimplexNotFound if s is absent.
func (c *TreeComplex) Remove(s simplex.Simplex) error {
	if !c.t.Contains(s) {
		return fmt.Errorf("TreeComplex.Remove(%v): %w", s, ErrSimplexNotFound)
	}
	c.t.Remove(s)

	return nil
}

// Discard deletes s and its cofaces when present.
func (c *TreeComplex) Discard(s simplex.Simplex) { c.t.Remove(s) }

// Contains walks the path of s from the root.
func (c *TreeComplex) Contains(s simplex.Simplex) bool { return c.t.Contains(s) }

// Faces returns the p-simplices in lexicographic order.
func (c *TreeComplex) Faces(p int) []simplex.Simplex {
	if p < 0 || p > c.t.Dim() {
		return nil
	}

	return c.t.Simplices(p)
}

// Simplices returns every simplex by dimension, then lexicographically.
func (c *TreeComplex) Simplices() []simplex.Simplex {
	out := make([]simplex.Simplex, 0, c.t.Len())
	for p := 0; p <= c.t.Dim(); p++ {
		out = append(out, c.t.Simplices(p)...)
	}

	return out
}

// All iterates Simplices lazily.
func (c *TreeComplex) All() iter.Seq[simplex.Simplex] { return seqOf(c.Simplices) }

// Cofaces returns the cofaces of s by dimension, then lexicographically.
func (c *TreeComplex) Cofaces(s simplex.Simplex) []simplex.Simplex {
	if !c.t.Contains(s) {
		return nil
	}

	return sortedCofaces(c.t.Cofaces(s))
}

// Card returns the number of p-simplices.
func (c *TreeComplex) Card(p int) int {
	shape := c.t.NSimplices()
	if p < 0 || p >= len(shape) {
		return 0
	}

	return shape[p]
}

// Shape returns the per-dimension counts.
func (c *TreeComplex) Shape() []int { return c.t.NSimplices() }

// Dim returns the largest dimension, or -1.
func (c *TreeComplex) Dim() int { return c.t.Dim() }

// Len returns the number of simplices.
func (c *TreeComplex) Len() int { return c.t.Len() }

// String summarizes the complex.
func (c *TreeComplex) String() string { return Summary("complex", c.t.NSimplices()) }
