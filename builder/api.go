// SPDX-License-Identifier: MIT
// Package: splex/builder
//
// api.go — the Build orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/simplex"
)

// Constructor adds simplices to c using the resolved builderConfig. It
// validates its parameters before the first Add and preserves determinism
// for equal config and call order.
type Constructor func(c complex.Complex, cfg builderConfig) error

// Build creates an empty complex of backend b, resolves opts and applies
// cons in order. The first constructor error is returned wrapped with
// "Build: "; the partially built complex is discarded.
// Complexity: Σ cost of each constructor.
func Build(b complex.Backend, opts []Option, cons ...Constructor) (complex.Complex, error) {
	c, err := complex.New(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	// Resolve options once; every constructor sees the same cfg and rng.
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		// A nil constructor is a caller bug; report its position.
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		// Stop at the first failure and drop c.
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return c, nil
}

// addIndices labels idx through cfg.labelFn and adds the resulting simplex.
func addIndices(c complex.Complex, cfg builderConfig, method string, idx ...int) error {
	vs := make([]int, len(idx))
	for i, x := range idx {
		vs[i] = cfg.labelFn(x)
	}
	s, err := simplex.New(vs...)
	if err != nil {
		return fmt.Errorf("%s: labels %v: %w: %w", method, vs, ErrConstructFailed, err)
	}
	if err := c.Add(s); err != nil {
		return fmt.Errorf("%s: Add(%v): %w: %w", method, s, ErrConstructFailed, err)
	}

	return nil
}

// addSimplices adds every simplex of ss, read as construction indices.
func addSimplices(c complex.Complex, cfg builderConfig, method string, ss []simplex.Simplex) error {
	for _, s := range ss {
		if err := addIndices(c, cfg, method, s.Vertices()...); err != nil {
			return err
		}
	}

	return nil
}

// indexSimplex is (0, 1, ..., n-1).
func indexSimplex(n int) simplex.Simplex {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}
	s, _ := simplex.FromSorted(vs)

	return s
}
