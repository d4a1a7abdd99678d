// SPDX-License-Identifier: MIT
// Package: splex/simplextree
//
// tree.go — arena, node handles, insertion and lookup.

package simplextree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/splex/simplex"
)

// nodeID addresses a node in the arena.
type nodeID int32

const rootID nodeID = 0

// node is one trie vertex. depth is the path length from the root, so a
// node at depth d denotes a (d-1)-simplex.
type node struct {
	label    int
	parent   nodeID
	depth    int
	children []nodeID // sorted by label
	alive    bool
}

// Tree is a simplex tree. The zero value is not usable; call New.
type Tree struct {
	nodes   []node
	free    []nodeID
	cousins []map[int][]nodeID // cousins[d-1][label] = nodes at depth d with label
	counts  []int              // counts[p] = number of p-simplices
}

// New returns an empty tree, optionally seeded with simplices.
func New(ss ...simplex.Simplex) *Tree {
	t := &Tree{nodes: []node{{label: -1, parent: -1, alive: true}}}
	t.Insert(ss...)

	return t
}

// Insert adds every simplex together with all of its faces.
// Re-inserting an existing simplex is a no-op.
// Complexity: O(2^k · k log deg) per k-vertex simplex.
func (t *Tree) Insert(ss ...simplex.Simplex) {
	for _, s := range ss {
		t.insertAll(rootID, s.Vertices())
	}
}

// InsertTuples validates raw vertex tuples, then inserts them.
// No tuple is inserted if any is invalid.
func (t *Tree) InsertTuples(tuples [][]int) error {
	ss, err := simplex.FromTuples(tuples)
	if err != nil {
		return fmt.Errorf("InsertTuples: %w", err)
	}
	t.Insert(ss...)

	return nil
}

// insertAll inserts every subset of vs below p: each vs[i] becomes a child
// of p and the suffix vs[i+1:] is inserted below it.
func (t *Tree) insertAll(p nodeID, vs []int) {
	for i, v := range vs {
		c := t.childOrCreate(p, v)
		t.insertAll(c, vs[i+1:])
	}
}

// child returns the child of p labelled v.
// Complexity: O(log deg(p)).
func (t *Tree) child(p nodeID, v int) (nodeID, bool) {
	kids := t.nodes[p].children
	i, ok := slices.BinarySearchFunc(kids, v, func(id nodeID, v int) int {
		return t.nodes[id].label - v
	})
	if !ok {
		return 0, false
	}

	return kids[i], true
}

// childOrCreate returns the child of p labelled v, creating it if absent.
func (t *Tree) childOrCreate(p nodeID, v int) nodeID {
	kids := t.nodes[p].children
	i, ok := slices.BinarySearchFunc(kids, v, func(id nodeID, v int) int {
		return t.nodes[id].label - v
	})
	if ok {
		return kids[i]
	}

	depth := t.nodes[p].depth + 1
	id := t.alloc(node{label: v, parent: p, depth: depth, alive: true})
	t.nodes[p].children = slices.Insert(t.nodes[p].children, i, id)

	for len(t.cousins) < depth {
		t.cousins = append(t.cousins, make(map[int][]nodeID))
	}
	t.cousins[depth-1][v] = append(t.cousins[depth-1][v], id)
	for len(t.counts) < depth {
		t.counts = append(t.counts, 0)
	}
	t.counts[depth-1]++

	return id
}

// alloc stores n in a free slot or at the end of the arena.
func (t *Tree) alloc(n node) nodeID {
	if k := len(t.free); k > 0 {
		id := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)

	return nodeID(len(t.nodes) - 1)
}

// find returns the node whose path is s. The empty face maps to the root.
func (t *Tree) find(s simplex.Simplex) (nodeID, bool) {
	id := rootID
	for i := 0; i < s.Len(); i++ {
		c, ok := t.child(id, s.At(i))
		if !ok {
			return 0, false
		}
		id = c
	}

	return id, true
}

// Contains reports whether s is in the tree. The empty face always is.
// Complexity: O(k log deg).
func (t *Tree) Contains(s simplex.Simplex) bool {
	_, ok := t.find(s)
	return ok
}

// Find answers Contains for each query, in order.
func (t *Tree) Find(ss ...simplex.Simplex) []bool {
	out := make([]bool, len(ss))
	for i, s := range ss {
		out[i] = t.Contains(s)
	}

	return out
}

// path returns the labels on the root-to-id path.
func (t *Tree) path(id nodeID) []int {
	vs := make([]int, t.nodes[id].depth)
	for i := len(vs) - 1; i >= 0; i-- {
		vs[i] = t.nodes[id].label
		id = t.nodes[id].parent
	}

	return vs
}

// simplexOf returns the simplex denoted by id.
func (t *Tree) simplexOf(id nodeID) simplex.Simplex {
	return mustSimplex(t.path(id))
}

// mustSimplex wraps a trie path; paths are strictly increasing by construction.
func mustSimplex(vs []int) simplex.Simplex {
	s, err := simplex.FromSorted(vs)
	if err != nil {
		panic(fmt.Sprintf("simplextree: corrupt path %v: %v", vs, err))
	}

	return s
}

// NSimplices returns the number of simplices per dimension.
// Complexity: O(dim).
func (t *Tree) NSimplices() []int { return slices.Clone(t.counts) }

// Dim returns the largest dimension present, or -1 when empty.
func (t *Tree) Dim() int { return len(t.counts) - 1 }

// Len returns the total number of simplices.
func (t *Tree) Len() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}

	return n
}

// Vertices returns the vertex labels in increasing order.
func (t *Tree) Vertices() []int {
	kids := t.nodes[rootID].children
	out := make([]int, len(kids))
	for i, id := range kids {
		out[i] = t.nodes[id].label
	}

	return out
}

// String summarizes the tree as
// "simplex tree with (4, 6, 4, 1) simplices of dimension (0, 1, 2, 3)".
func (t *Tree) String() string {
	counts := make([]string, len(t.counts))
	dims := make([]string, len(t.counts))
	for p, c := range t.counts {
		counts[p] = fmt.Sprint(c)
		dims[p] = fmt.Sprint(p)
	}

	return fmt.Sprintf("simplex tree with (%s) simplices of dimension (%s)",
		strings.Join(counts, ", "), strings.Join(dims, ", "))
}
