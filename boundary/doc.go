// SPDX-License-Identifier: MIT

// Package boundary builds signed boundary matrices of simplicial complexes
// and filtrations.
//
// For dimension p the matrix has one column per p-simplex and one row per
// (p-1)-simplex, both in the source's Faces order; a Filtration therefore
// yields filtration-ordered matrices. Column j holds the facets of simplex
// j. Facets are enumerated in lexicographic combination order and signed
// +1, -1, +1, ... along that enumeration, so for (a,b,c):
//
//	(a,b) → +1, (a,c) → -1, (b,c) → +1
//
// The composition of consecutive boundary matrices is zero.
//
// Matrix(src, 0) is the 0×card(0) matrix. Full(src) indexes rows and
// columns by all simplices in Simplices order, the form column reductions
// of persistent homology consume.
package boundary
