// SPDX-License-Identifier: MIT
// Package: splex/builder
//
// impl_octahedron.go — Octahedron().
//
// Vertices 0 and 5 are the poles; 1..4 the equator in cyclic order.
// The eight triangles join each pole to each equator edge.

package builder

import "github.com/katalvlaran/splex/complex"

var octahedronFaces = [8][3]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 1, 4},
	{5, 1, 2}, {5, 2, 3}, {5, 3, 4}, {5, 1, 4},
}

// Octahedron returns a Constructor adding the octahedral 2-sphere:
// shape (6, 12, 8).
func Octahedron() Constructor {
	// No parameters to validate; the face table is fixed.
	return func(c complex.Complex, cfg builderConfig) error {
		// Add the eight triangles in table order; edges and vertices follow by closure.
		for _, f := range octahedronFaces {
			// Relabel through cfg.labelFn and add the triangle.
			if err := addIndices(c, cfg, methodOctahedron, f[:]...); err != nil {
				return err
			}
		}

		return nil
	}
}
