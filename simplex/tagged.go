// SPDX-License-Identifier: MIT
// Package: splex/simplex
//
// tagged.go — simplices carrying a payload.

package simplex

import "fmt"

// Tagged pairs a simplex with a payload. Identity, ordering and Key come
// from the embedded Simplex only; Value never takes part in comparisons.
type Tagged[T any] struct {
	Simplex
	Value T
}

// ValueSimplex carries a scalar such as a filtration value or weight.
type ValueSimplex = Tagged[float64]

// PropertySimplex carries an open attribute bag.
type PropertySimplex = Tagged[map[string]any]

// Tag attaches v to s.
func Tag[T any](s Simplex, v T) Tagged[T] {
	return Tagged[T]{Simplex: s, Value: v}
}

// String renders the payload after the simplex: "(0,1)=0.5".
func (t Tagged[T]) String() string {
	return fmt.Sprintf("%s=%v", t.Simplex, t.Value)
}
