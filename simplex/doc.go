// SPDX-License-Identifier: MIT

// Package simplex defines the immutable Simplex value type: a strictly
// increasing tuple of non-negative vertex labels.
//
// Construction normalizes any collection of labels (sort + dedupe), so
// New(2, 0, 1, 1) and New(0, 1, 2) are the same simplex. A Simplex is never
// mutated in place; Union, Difference, Facet and friends return new values.
//
// Identity is the vertex tuple. Equal compares tuples and Key returns a
// comparable encoding suitable for map keys. Tagged[T] attaches a payload
// (a filtration value, an attribute bag) without changing identity.
//
// Two orders are provided:
//
//	IsFaceOf / IsProperFaceOf — the face poset (subset relation), partial.
//	Compare / Less            — its linear extension: dimension, then lex.
package simplex
