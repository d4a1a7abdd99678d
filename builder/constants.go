// SPDX-License-Identifier: MIT
// Package: splex/builder
//
// constants.go — method tags and domain minimums.

package builder

// Method tags prefix errors with the constructor name.
const (
	methodBuild         = "Build"
	methodFullSimplex   = "FullSimplex"
	methodSkeleton      = "Skeleton"
	methodSphere        = "Sphere"
	methodCycle         = "Cycle"
	methodOctahedron    = "Octahedron"
	methodRandomComplex = "RandomComplex"
)

const (
	// MinSimplexVertices is the smallest vertex count of FullSimplex and Skeleton.
	MinSimplexVertices = 1

	// MinCycleVertices is the smallest n-gon without repeated edges.
	MinCycleVertices = 3

	// MinProbability and MaxProbability bound RandomComplex's p, inclusive.
	MinProbability = 0.0
	MaxProbability = 1.0
)
