// SPDX-License-Identifier: MIT
// Package: splex/simplex
//
// poset.go — face-poset relation and its linear extension.

package simplex

import (
	"cmp"
	"slices"
)

// IsFaceOf reports s ⊆ t. Every simplex is a face of itself and the
// empty face is a face of everything.
// Complexity: O(|s| + |t|) merge walk.
func (s Simplex) IsFaceOf(t Simplex) bool {
	if len(s.v) > len(t.v) {
		return false
	}
	j := 0
	for _, x := range s.v {
		for j < len(t.v) && t.v[j] < x {
			j++
		}
		if j == len(t.v) || t.v[j] != x {
			return false
		}
		j++
	}

	return true
}

// IsProperFaceOf reports s ⊂ t (s ⊆ t and s ≠ t).
func (s Simplex) IsProperFaceOf(t Simplex) bool {
	return len(s.v) < len(t.v) && s.IsFaceOf(t)
}

// IsCofaceOf reports s ⊇ t.
func (s Simplex) IsCofaceOf(t Simplex) bool { return t.IsFaceOf(s) }

// Compare orders simplices by dimension, then lexicographically by vertex
// tuple. It returns -1, 0 or +1 and is a linear extension of the face poset.
func Compare(a, b Simplex) int {
	if c := cmp.Compare(len(a.v), len(b.v)); c != 0 {
		return c
	}

	return slices.Compare(a.v, b.v)
}

// CompareLex orders simplices lexicographically by vertex tuple only, so
// (0,1) precedes (1). This is the preorder of a simplex tree.
func CompareLex(a, b Simplex) int { return slices.Compare(a.v, b.v) }

// Less reports Compare(a, b) < 0.
func Less(a, b Simplex) bool { return Compare(a, b) < 0 }

// Sort sorts ss in place by Compare.
func Sort(ss []Simplex) { slices.SortFunc(ss, Compare) }
