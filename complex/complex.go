// SPDX-License-Identifier: MIT
// Package: splex/complex
//
// complex.go — the Complex contract, backend tags and constructors.

package complex

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/splex/simplex"
)

// Complex is an abstract simplicial complex: a set of simplices closed
// under taking faces.
type Complex interface {
	// Add inserts s and all of its missing faces.
	Add(s simplex.Simplex) error
	// Remove deletes s and its cofaces; ErrSimplexNotFound if s is absent.
	Remove(s simplex.Simplex) error
	// Discard is Remove without the missing-element error.
	Discard(s simplex.Simplex)
	// Contains reports membership.
	Contains(s simplex.Simplex) bool
	// Faces returns the p-simplices in backend order.
	Faces(p int) []simplex.Simplex
	// Simplices returns every simplex, by dimension then backend order.
	Simplices() []simplex.Simplex
	// All iterates Simplices lazily.
	All() iter.Seq[simplex.Simplex]
	// Cofaces returns the simplices containing s, s included.
	Cofaces(s simplex.Simplex) []simplex.Simplex
	// Card returns the number of p-simplices.
	Card(p int) int
	// Shape returns Card(p) for p = 0..Dim().
	Shape() []int
	// Dim returns the largest dimension, or -1 when empty.
	Dim() int
	// Len returns the number of simplices.
	Len() int
}

// Backend selects a Complex implementation.
type Backend uint8

const (
	// Set is the ordered-set reference backend.
	Set Backend = iota
	// Tree is the simplex-tree backend.
	Tree
	// Rank is the colex-rank backend.
	Rank
)

// String returns the canonical tag of b.
func (b Backend) String() string {
	switch b {
	case Set:
		return "set"
	case Tree:
		return "tree"
	case Rank:
		return "rank"
	}

	return fmt.Sprintf("Backend(%d)", uint8(b))
}

// ParseBackend maps "set", "tree" (or "simplextree") and "rank" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "set":
		return Set, nil
	case "tree", "simplextree", "simplex_tree":
		return Tree, nil
	case "rank":
		return Rank, nil
	}

	return 0, fmt.Errorf("ParseBackend(%q): %w", s, ErrUnknownBackend)
}

// New builds a complex of the given backend holding the closure of ss.
func New(b Backend, ss ...simplex.Simplex) (Complex, error) {
	var c Complex
	switch b {
	case Set:
		c = NewSet()
	case Tree:
		c = NewTree()
	case Rank:
		c = NewRank()
	default:
		return nil, fmt.Errorf("New(%v): %w", b, ErrUnknownBackend)
	}
	for _, s := range ss {
		if err := c.Add(s); err != nil {
			return nil, fmt.Errorf("New(%v): %w", b, err)
		}
	}

	return c, nil
}

// FromTuples validates raw vertex tuples and builds a complex from them.
// Nothing is built if any tuple is invalid.
func FromTuples(b Backend, tuples [][]int) (Complex, error) {
	ss, err := simplex.FromTuples(tuples)
	if err != nil {
		return nil, fmt.Errorf("FromTuples: %w", err)
	}

	return New(b, ss...)
}

// seqOf adapts a slice producer to a lazy sequence.
func seqOf(simplices func() []simplex.Simplex) iter.Seq[simplex.Simplex] {
	return func(yield func(simplex.Simplex) bool) {
		for _, s := range simplices() {
			if !yield(s) {
				return
			}
		}
	}
}
