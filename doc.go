// Package splex is your in-memory toolkit for abstract simplicial
// complexes — from combinatorial ranking to filtrations and signed
// boundary matrices.
//
// 🚀 What is splex?
//
//	A small family of packages that brings together:
//		• Ranking: colex/lex ranks of k-combinations, overflow-checked
//		• Simplices: an immutable, sorted vertex set with face/coface algebra
//		• Complexes: ordered-set, rank (bitmap) and simplex-tree backends
//		• Filtrations: complexes totally ordered by a monotone key
//		• Boundary matrices: sparse signed ∂_p, ready for homology
//		• Geometry: Vietoris–Rips complexes from point clouds
//
// ✨ Why choose splex?
//
//   - One Complex interface, three storage trade-offs
//   - Deterministic orders everywhere: lex, colex or filtration order
//   - Errors are sentinels you can match with errors.Is
//
// Under the hood, everything is organized under these subpackages:
//
//	combin/      — binomials, colex/lex rank & unrank, condensed pair indices
//	simplex/     — the Simplex value type, faces, boundary, partial order
//	simplextree/ — the simplex tree: trie with cousin lists and traversals
//	complex/     — the Complex interface with set, tree and rank backends
//	filtration/  — filtered complexes keyed by any ordered type
//	boundary/    — sparse signed boundary matrices and up-Laplacians
//	matrix/      — compressed sparse columns and dense float64 matrices
//	geometry/    — pairwise distances, enclosing radius and Rips complexes
//	builder/     — canonical complexes: simplices, spheres, cycles, random
//	cmd/splex    — command-line front end
//
// Quick ASCII example:
//
//	      2
//	     ╱█╲
//	    0───1
//
//	the filled triangle (0,1,2): 3 vertices, 3 edges and 1 triangle,
//	with ∂_1 = [[1, 1, 0], [-1, 0, 1], [0, -1, -1]].
//
//	go get github.com/katalvlaran/splex
package splex
