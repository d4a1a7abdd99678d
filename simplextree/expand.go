// SPDX-License-Identifier: MIT
// Package: splex/simplextree
//
// expand.go — flag-complex expansion and 1-skeleton queries.

package simplextree

import (
	"fmt"
	"slices"
)

// Expand inserts every clique of the 1-skeleton up to dimension k, turning
// the tree into the k-skeleton of its flag complex. Existing simplices are
// kept; expansion is idempotent.
//
// For every node n and every right sibling r of n, the simplex path(n)+label(r)
// is present iff (label(n), label(r)) is an edge: both path(n) and
// path(parent)+label(r) are already cliques.
// Complexity: O(Σ_nodes siblings·log deg), output sensitive.
func (t *Tree) Expand(k int) error {
	if k < 0 {
		return fmt.Errorf("Expand(%d): %w", k, ErrInvalidDimension)
	}
	t.expandChildren(rootID, k)

	return nil
}

// expandChildren extends each child of p by its adjacent right siblings,
// then recurses while the new simplices stay within dimension k.
func (t *Tree) expandChildren(p nodeID, k int) {
	kids := slices.Clone(t.nodes[p].children)
	for i, c := range kids {
		if t.nodes[c].depth > k { // children of c would have dimension depth(c)
			continue
		}
		u := t.nodes[c].label
		for _, r := range kids[i+1:] {
			w := t.nodes[r].label
			if t.hasEdge(u, w) {
				t.childOrCreate(c, w)
			}
		}
		t.expandChildren(c, k)
	}
}

// hasEdge reports whether the edge (u, w), u < w, is present.
func (t *Tree) hasEdge(u, w int) bool {
	vu, ok := t.child(rootID, u)
	if !ok {
		return false
	}
	_, ok = t.child(vu, w)

	return ok
}

// Degree returns the number of edges incident to each vertex, 0 for
// vertices not in the tree.
// Complexity: O(log n) per vertex.
func (t *Tree) Degree(vs ...int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		if id, ok := t.child(rootID, v); ok {
			out[i] = len(t.nodes[id].children) // edges (v, w) with w > v
		}
		if len(t.cousins) > 1 {
			out[i] += len(t.cousins[1][v]) // edges (u, v) with u < v
		}
	}

	return out
}

// Adjacent returns the neighbours of v in the 1-skeleton, sorted.
func (t *Tree) Adjacent(v int) []int {
	var out []int
	if len(t.cousins) > 1 {
		for _, id := range t.cousins[1][v] {
			out = append(out, t.nodes[t.nodes[id].parent].label)
		}
	}
	if id, ok := t.child(rootID, v); ok {
		for _, c := range t.nodes[id].children {
			out = append(out, t.nodes[c].label)
		}
	}
	slices.Sort(out)

	return out
}
