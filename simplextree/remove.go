// SPDX-License-Identifier: MIT
// Package: splex/simplextree
//
// remove.go — coface removal and elementary collapses.

package simplextree

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/splex/simplex"
)

// Remove deletes each simplex together with all of its cofaces.
// Absent simplices are skipped. Removing the empty face empties the tree.
// Complexity: O(Σ cousins at depths ≥ k) to locate cofaces plus the size
// of the removed subtrees.
func (t *Tree) Remove(ss ...simplex.Simplex) {
	for _, s := range ss {
		if s.IsEmpty() {
			t.clear()
			continue
		}
		if !t.Contains(s) {
			continue
		}
		for _, r := range t.cofaceRoots(s) {
			t.removeSubtree(r)
		}
	}
}

// clear drops every node but the root.
func (t *Tree) clear() {
	*t = *New()
}

// cofaceRoots returns the nodes whose subtrees hold exactly the cofaces of
// s, sorted by path. Every coface contains last(s), so its path passes a
// node labelled last(s) at depth ≥ |s|; the subtree below such a node is
// entirely made of cofaces when the node's own path contains s.
func (t *Tree) cofaceRoots(s simplex.Simplex) []nodeID {
	last, ok := s.Last()
	if !ok {
		return slices.Clone(t.nodes[rootID].children)
	}
	var roots []nodeID
	for d := s.Len(); d <= len(t.cousins); d++ {
		for _, id := range t.cousins[d-1][last] {
			if t.pathContains(id, s) {
				roots = append(roots, id)
			}
		}
	}
	slices.SortFunc(roots, func(a, b nodeID) int {
		return slices.Compare(t.path(a), t.path(b))
	})

	return roots
}

// pathContains reports whether s ⊆ path(id). Labels decrease towards the
// root, so s is matched from its last vertex backwards.
func (t *Tree) pathContains(id nodeID, s simplex.Simplex) bool {
	i := s.Len() - 1
	for id != rootID && i >= 0 {
		l := t.nodes[id].label
		switch {
		case l == s.At(i):
			i--
		case l < s.At(i):
			return false
		}
		id = t.nodes[id].parent
	}

	return i < 0
}

// removeSubtree unlinks id from its parent and frees it with all descendants.
func (t *Tree) removeSubtree(id nodeID) {
	p := t.nodes[id].parent
	kids := t.nodes[p].children
	if i := slices.Index(kids, id); i >= 0 {
		t.nodes[p].children = slices.Delete(kids, i, i+1)
	}
	t.freeRec(id)
	for len(t.counts) > 0 && t.counts[len(t.counts)-1] == 0 {
		t.counts = t.counts[:len(t.counts)-1]
		t.cousins = t.cousins[:len(t.cousins)-1]
	}
}

// freeRec releases id and its descendants from the arena and cousin tables.
func (t *Tree) freeRec(id nodeID) {
	for _, c := range t.nodes[id].children {
		t.freeRec(c)
	}
	n := t.nodes[id]
	table := t.cousins[n.depth-1]
	list := table[n.label]
	i := slices.Index(list, id)
	if i < 0 {
		panic(fmt.Sprintf("simplextree: cousin table out of sync for label %d at depth %d", n.label, n.depth))
	}
	list[i] = list[len(list)-1]
	if list = list[:len(list)-1]; len(list) == 0 {
		delete(table, n.label)
	} else {
		table[n.label] = list
	}
	t.counts[n.depth-1]--
	t.nodes[id] = node{parent: -1}
	t.free = append(t.free, id)
}

// Collapse performs the elementary collapse of the free pair (sigma, tau):
// tau must be a coface of sigma one dimension higher, and tau must be the
// only proper coface of sigma. On success both are removed and true is
// returned; a pair that is valid but not free yields false and leaves the
// tree unchanged.
func (t *Tree) Collapse(sigma, tau simplex.Simplex) (bool, error) {
	if !t.Contains(sigma) || !t.Contains(tau) {
		return false, fmt.Errorf("Collapse(%v,%v): %w", sigma, tau, ErrSimplexNotFound)
	}
	if tau.Dim() != sigma.Dim()+1 || !sigma.IsFaceOf(tau) {
		return false, fmt.Errorf("Collapse(%v,%v): %w", sigma, tau, ErrNotFreePair)
	}
	n := 0
	t.cofaces(sigma, -1, func(nodeID) bool {
		n++
		return n <= 2
	})
	if n != 2 { // sigma itself and tau
		return false, nil
	}
	t.Remove(sigma)

	return true, nil
}
