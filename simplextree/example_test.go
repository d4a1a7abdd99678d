// SPDX-License-Identifier: MIT

package simplextree_test

import (
	"fmt"

	"github.com/katalvlaran/splex/simplex"
	"github.com/katalvlaran/splex/simplextree"
)

// ExampleTree_Expand fills the triangles of a complete graph on four vertices.
func ExampleTree_Expand() {
	st := simplextree.New()
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			st.Insert(simplex.MustNew(i, j))
		}
	}
	_ = st.Expand(2)
	fmt.Println(st.NSimplices())
	// Output:
	// [4 6 4]
}

// ExampleTree_Traverse prints the cofaces of a vertex.
func ExampleTree_Traverse() {
	st := simplextree.New(simplex.MustNew(0, 1, 2), simplex.MustNew(1, 3))
	_ = st.Traverse(simplextree.Cofaces, func(s simplex.Simplex) bool {
		fmt.Print(s, " ")
		return true
	}, simplextree.WithSimplex(simplex.MustNew(1)))
	fmt.Println()
	// Output:
	// (0,1) (0,1,2) (1) (1,2) (1,3)
}
