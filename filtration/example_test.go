// SPDX-License-Identifier: MIT

package filtration_test

import (
	"fmt"

	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/filtration"
	"github.com/katalvlaran/splex/simplex"
)

func ExampleFromComplex() {
	c := complex.NewSet(simplex.MustNew(0, 1, 2))
	f, _ := filtration.FromComplex(c, func(s simplex.Simplex) int { return s.Dim() }, filtration.Set)
	for k, s := range f.All() {
		fmt.Println(k, s)
	}
	// Output:
	// 0 (0)
	// 0 (1)
	// 0 (2)
	// 1 (0,1)
	// 1 (0,2)
	// 1 (1,2)
	// 2 (0,1,2)
}
