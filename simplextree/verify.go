// SPDX-License-Identifier: MIT
// Package: splex/simplextree
//
// verify.go — structural self-check.

package simplextree

import "fmt"

// Verify checks the structural invariants of the tree: sorted children with
// increasing labels, consistent parent and depth links, cousin tables that
// list exactly the live nodes, and per-dimension counts that match them.
// It returns ErrCorrupt describing the first violation found.
// Complexity: O(nodes).
func (t *Tree) Verify() error {
	counts := make([]int, len(t.counts))
	var walk func(id nodeID) error
	walk = func(id nodeID) error {
		n := t.nodes[id]
		for i, c := range n.children {
			cn := t.nodes[c]
			switch {
			case !cn.alive:
				return fmt.Errorf("%w: dead child %d under %d", ErrCorrupt, c, id)
			case cn.parent != id:
				return fmt.Errorf("%w: node %d has parent %d, expected %d", ErrCorrupt, c, cn.parent, id)
			case cn.depth != n.depth+1:
				return fmt.Errorf("%w: node %d at depth %d under depth %d", ErrCorrupt, c, cn.depth, n.depth)
			case id != rootID && cn.label <= n.label:
				return fmt.Errorf("%w: label %d not above parent label %d", ErrCorrupt, cn.label, n.label)
			case i > 0 && t.nodes[n.children[i-1]].label >= cn.label:
				return fmt.Errorf("%w: children of %d not sorted", ErrCorrupt, id)
			case cn.depth > len(counts):
				return fmt.Errorf("%w: node %d deeper than counts", ErrCorrupt, c)
			}
			counts[cn.depth-1]++
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(rootID); err != nil {
		return err
	}

	for p := range counts {
		if counts[p] != t.counts[p] {
			return fmt.Errorf("%w: %d simplices of dimension %d, counted %d", ErrCorrupt, t.counts[p], p, counts[p])
		}
	}
	if len(t.cousins) != len(t.counts) {
		return fmt.Errorf("%w: %d cousin tables for %d dimensions", ErrCorrupt, len(t.cousins), len(t.counts))
	}
	for d, table := range t.cousins {
		listed := 0
		for label, ids := range table {
			for _, id := range ids {
				n := t.nodes[id]
				if !n.alive || n.label != label || n.depth != d+1 {
					return fmt.Errorf("%w: cousin table depth %d label %d lists node %d", ErrCorrupt, d+1, label, id)
				}
			}
			listed += len(ids)
		}
		if listed != t.counts[d] {
			return fmt.Errorf("%w: cousin table depth %d lists %d nodes, want %d", ErrCorrupt, d+1, listed, t.counts[d])
		}
	}

	return nil
}
