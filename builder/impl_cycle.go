// SPDX-License-Identifier: MIT
// Package: splex/builder
//
// impl_cycle.go — Cycle(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges in stable order (i, (i+1) mod n) for i = 0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/splex/complex"
)

// Cycle returns a Constructor adding the n-gon: n vertices, n edges.
// Complexity: O(n).
func Cycle(n int) Constructor {
	// Return a closure capturing n; Build passes (c, cfg).
	return func(c complex.Complex, cfg builderConfig) error {
		// Validate parameter domain before the first Add.
		if n < MinCycleVertices {
			// Keep the sentinel reachable through errors.Is.
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleVertices, ErrTooFewVertices)
		}

		// Emit ring edges in ascending i; i == n-1 closes the ring at 0.
		// Each edge brings its two vertices along, so vertices need no pass of their own.
		for i := 0; i < n; i++ {
			// Labels come from cfg.labelFn inside addIndices.
			if err := addIndices(c, cfg, methodCycle, i, (i+1)%n); err != nil {
				// First failure aborts; Build discards the partial complex.
				return err
			}
		}

		return nil
	}
}
