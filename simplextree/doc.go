// SPDX-License-Identifier: MIT

// Package simplextree stores a simplicial complex as a simplex tree: an
// ordered trie whose root-to-node paths are exactly the simplices.
//
// Nodes live in an arena and refer to each other by index (parent link,
// label-sorted children). A per-depth cousin table maps every label to the
// nodes at that depth carrying it, so cofaces, links and maximality are
// answered without scanning the whole trie.
//
// Inserting a simplex inserts all of its faces. Removing a simplex removes
// all of its cofaces; removing an absent simplex is a no-op. Per-dimension
// counts are maintained on every mutation, so NSimplices is O(dim).
//
// Traversals are selected with the Order enum; ParseOrder maps textual tags
// for callers at the edge. A traversal visits simplices in a fixed order and
// stops early when the visitor returns false.
//
// A Tree is not safe for concurrent mutation. Concurrent readers are fine
// while no writer is active. Mutating the subtree being traversed from inside
// a visitor is undefined.
package simplextree
