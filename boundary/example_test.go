// SPDX-License-Identifier: MIT

package boundary_test

import (
	"fmt"

	"github.com/katalvlaran/splex/boundary"
	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/simplex"
)

func ExampleMatrix() {
	c := complex.NewSet(simplex.MustNew(0, 1, 2))
	d, _ := boundary.Matrix(c, 2)
	fmt.Print(d)
	// Output:
	// [1]
	// [-1]
	// [1]
}
