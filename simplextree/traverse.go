// SPDX-License-Identifier: MIT
// Package: splex/simplextree
//
// traverse.go — the nine traversal orders.

package simplextree

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/splex/simplex"
)

// Traverse visits simplices in the given order, calling visit once per
// simplex until it returns false. Orders Faces, Cofaces, CofaceRoots and
// Link require WithSimplex; Skeleton and KSimplices require WithDim.
// An absent σ yields no cofaces, coface roots or link, and only those
// faces of σ that are present.
func (t *Tree) Traverse(o Order, visit func(simplex.Simplex) bool, opts ...TraverseOption) error {
	to, err := resolve(o, opts)
	if err != nil {
		return err
	}
	emit := func(id nodeID) bool { return visit(t.simplexOf(id)) }
	k := -1
	if to.hasK {
		k = to.k
	}

	switch o {
	case Preorder:
		t.preorder(rootID, -1, emit)
	case LevelOrder:
		t.levelOrder(emit)
	case Faces:
		t.faces(rootID, to.sigma.Vertices(), k, emit)
	case Cofaces:
		t.cofaces(to.sigma, k, emit)
	case CofaceRoots:
		for _, id := range t.cofaceRoots(to.sigma) {
			if k >= 0 && t.nodes[id].depth != k+1 {
				continue
			}
			if !emit(id) {
				break
			}
		}
	case Skeleton:
		t.preorder(rootID, k+1, emit)
	case KSimplices:
		t.preorder(rootID, k+1, func(id nodeID) bool {
			return t.nodes[id].depth != k+1 || emit(id)
		})
	case Maximal:
		t.preorder(rootID, -1, func(id nodeID) bool {
			return !t.isMaximal(id) || emit(id)
		})
	case Link:
		for _, s := range t.link(to.sigma) {
			if !visit(s) {
				break
			}
		}
	}

	return nil
}

// Collect gathers a traversal into a slice.
func (t *Tree) Collect(o Order, opts ...TraverseOption) ([]simplex.Simplex, error) {
	var out []simplex.Simplex
	err := t.Traverse(o, func(s simplex.Simplex) bool {
		out = append(out, s)
		return true
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("Collect: %w", err)
	}

	return out, nil
}

// All iterates every simplex in preorder. The sequence is invalidated by
// any mutation of the tree.
func (t *Tree) All() iter.Seq[simplex.Simplex] {
	return func(yield func(simplex.Simplex) bool) {
		_ = t.Traverse(Preorder, yield)
	}
}

// Faces returns the faces of s present in the tree, in preorder.
func (t *Tree) Faces(s simplex.Simplex) []simplex.Simplex {
	out, _ := t.Collect(Faces, WithSimplex(s))
	return out
}

// Cofaces returns the cofaces of s, s included, in preorder.
func (t *Tree) Cofaces(s simplex.Simplex) []simplex.Simplex {
	out, _ := t.Collect(Cofaces, WithSimplex(s))
	return out
}

// CofaceRoots returns the roots of the coface subtrees of s.
func (t *Tree) CofaceRoots(s simplex.Simplex) []simplex.Simplex {
	out, _ := t.Collect(CofaceRoots, WithSimplex(s))
	return out
}

// Skeleton returns every simplex of dimension ≤ k, in preorder.
func (t *Tree) Skeleton(k int) []simplex.Simplex {
	out, _ := t.Collect(Skeleton, WithDim(k))
	return out
}

// Simplices returns every simplex of dimension k, in preorder.
func (t *Tree) Simplices(k int) []simplex.Simplex {
	out, _ := t.Collect(KSimplices, WithDim(k))
	return out
}

// Maximal returns the maximal simplices, in preorder.
func (t *Tree) Maximal() []simplex.Simplex {
	out, _ := t.Collect(Maximal)
	return out
}

// Link returns the link of s in lexicographic order.
func (t *Tree) Link(s simplex.Simplex) []simplex.Simplex {
	return t.link(s)
}

// preorder visits the descendants of id depth-first, skipping nodes deeper
// than maxDepth when maxDepth ≥ 0. It reports false if f stopped it.
func (t *Tree) preorder(id nodeID, maxDepth int, f func(nodeID) bool) bool {
	for _, c := range t.nodes[id].children {
		if maxDepth >= 0 && t.nodes[c].depth > maxDepth {
			return true // siblings share the depth
		}
		if !f(c) || !t.preorder(c, maxDepth, f) {
			return false
		}
	}

	return true
}

// levelOrder visits all nodes breadth-first.
func (t *Tree) levelOrder(f func(nodeID) bool) {
	queue := slices.Clone(t.nodes[rootID].children)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if !f(id) {
			return
		}
		queue = append(queue, t.nodes[id].children...)
	}
}

// faces walks the trie restricted to the labels in vs, which yields the
// faces of the simplex vs present in the tree, in preorder.
func (t *Tree) faces(id nodeID, vs []int, k int, f func(nodeID) bool) bool {
	for j, v := range vs {
		c, ok := t.child(id, v)
		if !ok {
			continue
		}
		if k < 0 || t.nodes[c].depth == k+1 {
			if !f(c) {
				return false
			}
		}
		if !t.faces(c, vs[j+1:], k, f) {
			return false
		}
	}

	return true
}

// cofaces visits every coface of s (optionally only those of dimension k)
// in preorder: coface roots in path order, each followed by its subtree.
func (t *Tree) cofaces(s simplex.Simplex, k int, f func(nodeID) bool) bool {
	keep := func(id nodeID) bool { return k < 0 || t.nodes[id].depth == k+1 }
	for _, r := range t.cofaceRoots(s) {
		if keep(r) && !f(r) {
			return false
		}
		ok := t.preorder(r, -1, func(id nodeID) bool {
			return !keep(id) || f(id)
		})
		if !ok {
			return false
		}
	}

	return true
}

// isMaximal reports whether id has no proper coface: no children and no
// deeper node with the same label whose path contains path(id).
func (t *Tree) isMaximal(id nodeID) bool {
	if len(t.nodes[id].children) > 0 {
		return false
	}
	s := t.simplexOf(id)
	label := t.nodes[id].label
	for d := t.nodes[id].depth + 1; d <= len(t.cousins); d++ {
		for _, c := range t.cousins[d-1][label] {
			if t.pathContains(c, s) {
				return false
			}
		}
	}

	return true
}

// link returns {τ \ σ : τ a proper coface of σ}, deduplicated and sorted
// lexicographically.
func (t *Tree) link(s simplex.Simplex) []simplex.Simplex {
	seen := make(map[simplex.Key]struct{})
	var out []simplex.Simplex
	t.cofaces(s, -1, func(id nodeID) bool {
		if t.nodes[id].depth == s.Len() {
			return true // σ itself
		}
		r := t.simplexOf(id).Difference(s)
		if _, dup := seen[r.Key()]; !dup {
			seen[r.Key()] = struct{}{}
			out = append(out, r)
		}
		return true
	})
	slices.SortFunc(out, simplex.CompareLex)

	return out
}
