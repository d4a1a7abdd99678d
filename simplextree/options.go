// SPDX-License-Identifier: MIT
// Package: splex/simplextree
//
// options.go — traversal options.

package simplextree

import (
	"fmt"

	"github.com/katalvlaran/splex/simplex"
)

// TraverseOption configures a traversal. Invalid values are recorded and
// surface as ErrOptionViolation when Traverse runs.
type TraverseOption func(*traverseOptions)

type traverseOptions struct {
	sigma    simplex.Simplex
	hasSigma bool
	k        int
	hasK     bool
	err      error
}

// WithSimplex sets σ for Faces, Cofaces, CofaceRoots and Link.
func WithSimplex(s simplex.Simplex) TraverseOption {
	return func(o *traverseOptions) {
		o.sigma = s
		o.hasSigma = true
	}
}

// WithDim sets k for Skeleton and KSimplices. For Faces, Cofaces and
// CofaceRoots it restricts the output to dimension k.
func WithDim(k int) TraverseOption {
	return func(o *traverseOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: negative dimension %d", ErrOptionViolation, k)
			return
		}
		o.k = k
		o.hasK = true
	}
}

// resolve applies opts and checks the requirements of order o.
func resolve(o Order, opts []TraverseOption) (traverseOptions, error) {
	var to traverseOptions
	for _, opt := range opts {
		opt(&to)
	}
	if to.err != nil {
		return to, to.err
	}
	switch o {
	case Faces, Cofaces, CofaceRoots, Link:
		if !to.hasSigma {
			return to, fmt.Errorf("%w: order %v needs WithSimplex", ErrOptionViolation, o)
		}
	case Skeleton, KSimplices:
		if !to.hasK {
			return to, fmt.Errorf("%w: order %v needs WithDim", ErrOptionViolation, o)
		}
	case Preorder, LevelOrder, Maximal:
	default:
		return to, fmt.Errorf("Traverse(%v): %w", o, ErrUnknownOrder)
	}

	return to, nil
}
