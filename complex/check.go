// SPDX-License-Identifier: MIT
// Package: splex/complex
//
// check.go — backend-independent checks and summaries.

package complex

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/splex/simplex"
)

// CheckClosure verifies that every facet of every member is a member.
// Complexity: O(Σ_s dim(s) · Contains).
func CheckClosure(c Complex) error {
	for s := range c.All() {
		for _, f := range s.Boundary() {
			if !c.Contains(f) {
				return fmt.Errorf("CheckClosure: facet %v of %v: %w", f, s, ErrNotClosed)
			}
		}
	}

	return nil
}

// Equal reports whether a and b hold the same simplices, whatever their
// backends.
func Equal(a, b Complex) bool {
	if !slices.Equal(a.Shape(), b.Shape()) {
		return false
	}
	for s := range a.All() {
		if !b.Contains(s) {
			return false
		}
	}

	return true
}

// Describe summarizes a complex as
// "3-d complex with (4, 6, 4, 1)-simplices of dimension (0, 1, 2, 3)".
func Describe(c Complex) string {
	return Summary("complex", c.Shape())
}

// Summary formats a per-dimension shape under the given noun; an empty
// shape reads "empty <kind>".
func Summary(kind string, shape []int) string {
	if len(shape) == 0 {
		return "empty " + kind
	}
	counts := make([]string, len(shape))
	dims := make([]string, len(shape))
	for p, n := range shape {
		counts[p] = fmt.Sprint(n)
		dims[p] = fmt.Sprint(p)
	}

	return fmt.Sprintf("%d-d %s with (%s)-simplices of dimension (%s)",
		len(shape)-1, kind, strings.Join(counts, ", "), strings.Join(dims, ", "))
}

// sumInts is the total of a shape.
func sumInts(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}

	return n
}

// trimShape drops trailing zero counts.
func trimShape(shape []int) []int {
	for len(shape) > 0 && shape[len(shape)-1] == 0 {
		shape = shape[:len(shape)-1]
	}

	return shape
}

// sortedCofaces orders cofaces by dimension then lexicographically.
func sortedCofaces(ss []simplex.Simplex) []simplex.Simplex {
	slices.SortFunc(ss, simplex.Compare)
	return ss
}
