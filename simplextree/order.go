// SPDX-License-Identifier: MIT
// Package: splex/simplextree
//
// order.go — traversal orders and their textual tags.

package simplextree

import (
	"fmt"
	"strings"
)

// Order selects a traversal.
type Order uint8

const (
	// Preorder visits parents before children, siblings by label (DFS).
	Preorder Order = iota
	// LevelOrder visits simplices breadth-first, by dimension.
	LevelOrder
	// Faces visits the faces of a simplex present in the tree, in preorder.
	Faces
	// Cofaces visits the simplices containing a simplex, in preorder.
	Cofaces
	// CofaceRoots visits the roots of the subtrees holding the cofaces of a
	// simplex: the minimal nodes whose entire subtree consists of cofaces.
	CofaceRoots
	// Skeleton visits every simplex of dimension ≤ k, in preorder.
	Skeleton
	// KSimplices visits every simplex of dimension exactly k, in preorder.
	KSimplices
	// Maximal visits the simplices with no proper coface, in preorder.
	Maximal
	// Link visits the link of a simplex: every τ disjoint from σ with τ ∪ σ
	// in the tree, in lexicographic order.
	Link
)

var orderNames = [...]string{
	Preorder:    "preorder",
	LevelOrder:  "level_order",
	Faces:       "faces",
	Cofaces:     "cofaces",
	CofaceRoots: "coface_roots",
	Skeleton:    "k_skeleton",
	KSimplices:  "k_simplices",
	Maximal:     "maximal",
	Link:        "link",
}

// String returns the canonical tag of o.
func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}

	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ParseOrder maps a textual tag to an Order, case-insensitively.
// Accepted aliases: dfs, bfs, levelorder, skeleton, simplices.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "preorder":
		return Preorder, nil
	case "bfs", "level_order", "levelorder":
		return LevelOrder, nil
	case "faces":
		return Faces, nil
	case "cofaces":
		return Cofaces, nil
	case "coface_roots":
		return CofaceRoots, nil
	case "k_skeleton", "skeleton":
		return Skeleton, nil
	case "k_simplices", "simplices":
		return KSimplices, nil
	case "maximal":
		return Maximal, nil
	case "link":
		return Link, nil
	}

	return 0, fmt.Errorf("ParseOrder(%q): %w", s, ErrUnknownOrder)
}
