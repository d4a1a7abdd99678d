// SPDX-License-Identifier: MIT
// Package: splex/simplex
//
// simplex.go — the Simplex type, constructors and accessors.

package simplex

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Simplex is an immutable, sorted set of vertex labels.
// The zero value is the empty face (dimension -1).
type Simplex struct {
	v []int // strictly increasing, never mutated after construction
}

// Key is a comparable encoding of a simplex's vertex tuple.
// Two simplices have equal keys iff they are Equal.
type Key string

// New builds a simplex from any collection of labels, sorting and
// deduplicating them. Negative labels are rejected with ErrNegativeVertex.
// Complexity: O(k log k).
func New(vs ...int) (Simplex, error) {
	s := slices.Clone(vs)
	slices.Sort(s)
	s = slices.Compact(s)
	if len(s) > 0 && s[0] < 0 {
		return Simplex{}, fmt.Errorf("simplex.New(%v): %w", vs, ErrNegativeVertex)
	}

	return Simplex{v: s}, nil
}

// MustNew is New that panics on invalid labels. Intended for literals.
func MustNew(vs ...int) Simplex {
	s, err := New(vs...)
	if err != nil {
		panic(err)
	}

	return s
}

// FromSorted builds a simplex from labels that are already strictly
// increasing and non-negative, skipping the sort. The slice is copied.
// Complexity: O(k).
func FromSorted(vs []int) (Simplex, error) {
	for i, x := range vs {
		if x < 0 {
			return Simplex{}, fmt.Errorf("simplex.FromSorted(%v): %w", vs, ErrNegativeVertex)
		}
		if i > 0 && vs[i-1] >= x {
			return Simplex{}, fmt.Errorf("simplex.FromSorted(%v): %w", vs, ErrNotSorted)
		}
	}

	return Simplex{v: slices.Clone(vs)}, nil
}

// FromTuples converts raw vertex tuples into simplices. Every tuple is
// validated before any result is returned.
func FromTuples(tuples [][]int) ([]Simplex, error) {
	out := make([]Simplex, len(tuples))
	for i, t := range tuples {
		s, err := New(t...)
		if err != nil {
			return nil, fmt.Errorf("tuple %d: %w", i, err)
		}
		out[i] = s
	}

	return out, nil
}

// Len returns the number of vertices.
func (s Simplex) Len() int { return len(s.v) }

// Dim returns len-1; the empty face has dimension -1.
func (s Simplex) Dim() int { return len(s.v) - 1 }

// IsEmpty reports whether s is the empty face.
func (s Simplex) IsEmpty() bool { return len(s.v) == 0 }

// At returns the i-th smallest vertex. It panics if i is out of range,
// like a slice index.
func (s Simplex) At(i int) int { return s.v[i] }

// Vertices returns a copy of the vertex tuple.
func (s Simplex) Vertices() []int { return slices.Clone(s.v) }

// Last returns the largest vertex; ok is false for the empty face.
func (s Simplex) Last() (v int, ok bool) {
	if len(s.v) == 0 {
		return 0, false
	}

	return s.v[len(s.v)-1], true
}

// Contains reports whether vertex x belongs to s.
// Complexity: O(log k).
func (s Simplex) Contains(x int) bool {
	_, ok := slices.BinarySearch(s.v, x)
	return ok
}

// Equal reports whether s and t have the same vertex tuple.
func (s Simplex) Equal(t Simplex) bool { return slices.Equal(s.v, t.v) }

// Key returns the map key of s (uvarint-encoded labels).
func (s Simplex) Key() Key {
	buf := make([]byte, 0, 2*len(s.v))
	for _, x := range s.v {
		buf = binary.AppendUvarint(buf, uint64(x))
	}

	return Key(buf)
}

// String renders s as "(0,1,2)"; the empty face is "()".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range s.v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(')')

	return b.String()
}
