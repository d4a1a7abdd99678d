// SPDX-License-Identifier: MIT

// Package filtration attaches a monotone key to every simplex of a complex.
//
// A Filtration[K] is a simplicial complex together with a key per simplex
// such that every face of σ has a key no greater than key(σ). Simplices
// are kept in a total order that refines the key preorder:
//
//	Set backend:  (key, dimension, vertex tuple lexicographically)
//	Rank backend: (key, dimension, colex rank)
//
// Both orders put every face before its cofaces, so positions (Index)
// respect containment even where keys tie. Validate re-checks exactly that.
//
// Construction:
//
//	FromComplex(c, key, b) — key(σ) for every σ in c; must be monotone.
//	Enumerate(c, b)       — keys 0, 1, 2, ... in c.Simplices() order.
//	FromPairs(pairs, b)   — explicit (simplex, key) pairs; must be closed and monotone.
//
// Reindex replaces all keys at once from a non-decreasing sequence given in
// the current order; ReindexFunc recomputes them from a function and
// re-sorts. Both leave the filtration untouched when they fail.
//
// A Filtration is not safe for concurrent mutation. Slices returned by
// Faces, Simplices, Indices and Entries are owned by the caller.
package filtration
