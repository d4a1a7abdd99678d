// SPDX-License-Identifier: MIT

// Package builder assembles canonical and random simplicial complexes from
// composable constructors, for fixtures, examples and benchmarks.
//
// One orchestrator, Build(backend, opts, cons...), creates an empty complex
// of the requested backend, resolves the options into a builderConfig and
// runs the constructors in order. Constructors only ever Add, so composing
// them yields the union of their complexes.
//
// Constructors:
//
//   - FullSimplex(n):           the (n-1)-simplex on n vertices and all its faces.
//   - Skeleton(n, k):           the k-skeleton of the (n-1)-simplex.
//   - Sphere(d):                the boundary of the (d+1)-simplex, a triangulated d-sphere.
//   - Cycle(n):                 the n-gon as a 1-dimensional complex.
//   - Octahedron():             the octahedral 2-sphere on six vertices.
//   - RandomComplex(n, dim, p): each candidate simplex whose facets are all
//     present is kept with probability p, dimension by dimension.
//
// Options:
//
//   - WithSeed / WithRand: the RNG for RandomComplex (required when 0 < p < 1).
//   - WithLabelFn:         maps construction indices to vertex labels (identity by default).
//
// Determinism: equal backend, options, seed and constructor order give
// equal complexes. Constructors validate before touching the complex and
// return sentinel errors wrapped with their method tag; option constructors
// panic on nil arguments.
package builder
