// SPDX-License-Identifier: MIT

// Package geometry turns point clouds and distances into complexes and
// filtrations: Vietoris–Rips complexes, flag (clique) weights and
// lower-star weights.
//
// Distances are passed condensed: the upper triangle of the n×n distance
// matrix in lexicographic pair order, so d(i,j) for i < j sits at
// combin.RankC2(i, j, n) and n is recovered with combin.InverseChoose.
//
// The Rips complex at radius r holds every vertex, every edge (i,j) with
// d(i,j) ≤ 2r, and every clique of those edges up to the requested
// dimension. Its flag filtration keys each simplex with the largest of its
// edge lengths and vertex weights, which is monotone on faces.
package geometry
