// SPDX-License-Identifier: MIT
// Package: splex/simplex
//
// faces.go — face and boundary enumeration, set operations, closure.

package simplex

import "slices"

// Faces returns the p-dimensional faces of s in lexicographic order.
// It returns nil when p < 0 or p > s.Dim().
// Complexity: O(C(k, p+1)·(p+1)).
func (s Simplex) Faces(p int) []Simplex {
	if p < 0 || p >= len(s.v) {
		return nil
	}
	out := make([]Simplex, 0, combinationsCount(len(s.v), p+1))
	idx := make([]int, p+1)
	for i := range idx {
		idx[i] = i
	}
	n := len(s.v)
	for {
		f := make([]int, p+1)
		for i, j := range idx {
			f[i] = s.v[j]
		}
		out = append(out, Simplex{v: f})

		// advance idx to the next combination in lex order
		i := p
		for i >= 0 && idx[i] == n-(p+1)+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j <= p; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return out
}

// AllFaces returns every non-empty face of s, itself included, ordered by
// dimension and then lexicographically.
func (s Simplex) AllFaces() []Simplex {
	out := make([]Simplex, 0, (1<<min(len(s.v), 20))-1)
	for p := 0; p < len(s.v); p++ {
		out = append(out, s.Faces(p)...)
	}

	return out
}

// Boundary returns the facets of s in lexicographic order:
// for (a,b,c) that is (a,b), (a,c), (b,c). A vertex has no facets here;
// the empty face is not enumerated.
func (s Simplex) Boundary() []Simplex {
	return s.Faces(len(s.v) - 2)
}

// Facet returns s with the i-th vertex removed.
// It panics if i is out of range.
func (s Simplex) Facet(i int) Simplex {
	f := make([]int, 0, len(s.v)-1)
	f = append(f, s.v[:i]...)
	f = append(f, s.v[i+1:]...)

	return Simplex{v: f}
}

// Union returns s ∪ t.
func (s Simplex) Union(t Simplex) Simplex {
	out := make([]int, 0, len(s.v)+len(t.v))
	i, j := 0, 0
	for i < len(s.v) && j < len(t.v) {
		switch {
		case s.v[i] < t.v[j]:
			out = append(out, s.v[i])
			i++
		case s.v[i] > t.v[j]:
			out = append(out, t.v[j])
			j++
		default:
			out = append(out, s.v[i])
			i++
			j++
		}
	}
	out = append(out, s.v[i:]...)
	out = append(out, t.v[j:]...)

	return Simplex{v: out}
}

// Difference returns s \ t.
func (s Simplex) Difference(t Simplex) Simplex {
	out := make([]int, 0, len(s.v))
	for _, x := range s.v {
		if !t.Contains(x) {
			out = append(out, x)
		}
	}

	return Simplex{v: out}
}

// Closure returns every non-empty face of every input simplex, deduplicated
// and sorted by Compare.
func Closure(ss []Simplex) []Simplex {
	seen := make(map[Key]struct{})
	var out []Simplex
	for _, s := range ss {
		for _, f := range s.AllFaces() {
			k := f.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, f)
		}
	}
	slices.SortFunc(out, Compare)

	return out
}

// combinationsCount is C(n,k) for small arguments, used only as a capacity hint.
func combinationsCount(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
		if r > 1<<16 {
			return 1 << 16
		}
	}

	return r
}
