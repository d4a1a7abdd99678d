// SPDX-License-Identifier: MIT

package simplextree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splex/simplex"
	"github.com/katalvlaran/splex/simplextree"
)

// fixture: a filled triangle, a dangling edge and an isolated vertex.
func fixture() *simplextree.Tree {
	return simplextree.New(s(0, 1, 2), s(2, 3), s(4))
}

func TestTraverse_Orders(t *testing.T) {
	t.Parallel()

	st := fixture()
	cases := []struct {
		name  string
		order simplextree.Order
		opts  []simplextree.TraverseOption
		want  []string
	}{
		{"preorder", simplextree.Preorder, nil,
			[]string{"(0)", "(0,1)", "(0,1,2)", "(0,2)", "(1)", "(1,2)", "(2)", "(2,3)", "(3)", "(4)"}},
		{"level order", simplextree.LevelOrder, nil,
			[]string{"(0)", "(1)", "(2)", "(3)", "(4)", "(0,1)", "(0,2)", "(1,2)", "(2,3)", "(0,1,2)"}},
		{"faces", simplextree.Faces, []simplextree.TraverseOption{simplextree.WithSimplex(s(0, 1, 2))},
			[]string{"(0)", "(0,1)", "(0,1,2)", "(0,2)", "(1)", "(1,2)", "(2)"}},
		{"faces of dim 1", simplextree.Faces,
			[]simplextree.TraverseOption{simplextree.WithSimplex(s(0, 1, 2)), simplextree.WithDim(1)},
			[]string{"(0,1)", "(0,2)", "(1,2)"}},
		{"cofaces", simplextree.Cofaces, []simplextree.TraverseOption{simplextree.WithSimplex(s(2))},
			[]string{"(0,1,2)", "(0,2)", "(1,2)", "(2)", "(2,3)"}},
		{"cofaces of dim 1", simplextree.Cofaces,
			[]simplextree.TraverseOption{simplextree.WithSimplex(s(2)), simplextree.WithDim(1)},
			[]string{"(0,2)", "(1,2)", "(2,3)"}},
		{"coface roots", simplextree.CofaceRoots, []simplextree.TraverseOption{simplextree.WithSimplex(s(2))},
			[]string{"(0,1,2)", "(0,2)", "(1,2)", "(2)"}},
		{"skeleton 0", simplextree.Skeleton, []simplextree.TraverseOption{simplextree.WithDim(0)},
			[]string{"(0)", "(1)", "(2)", "(3)", "(4)"}},
		{"skeleton 1", simplextree.Skeleton, []simplextree.TraverseOption{simplextree.WithDim(1)},
			[]string{"(0)", "(0,1)", "(0,2)", "(1)", "(1,2)", "(2)", "(2,3)", "(3)", "(4)"}},
		{"k simplices", simplextree.KSimplices, []simplextree.TraverseOption{simplextree.WithDim(1)},
			[]string{"(0,1)", "(0,2)", "(1,2)", "(2,3)"}},
		{"maximal", simplextree.Maximal, nil,
			[]string{"(0,1,2)", "(2,3)", "(4)"}},
		{"link of vertex", simplextree.Link, []simplextree.TraverseOption{simplextree.WithSimplex(s(2))},
			[]string{"(0)", "(0,1)", "(1)", "(3)"}},
		{"link of edge", simplextree.Link, []simplextree.TraverseOption{simplextree.WithSimplex(s(0, 1))},
			[]string{"(2)"}},
		{"cofaces of absent", simplextree.Cofaces, []simplextree.TraverseOption{simplextree.WithSimplex(s(3, 4))},
			[]string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := st.Collect(tc.order, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, strs(got))
		})
	}
}

func TestTraverse_Convenience(t *testing.T) {
	t.Parallel()

	st := fixture()
	assert.Len(t, st.Faces(s(0, 1, 2)), 7)
	assert.Len(t, st.Cofaces(s(2, 3)), 1)
	assert.Len(t, st.CofaceRoots(s(0)), 1)
	assert.Len(t, st.Skeleton(2), 10)
	assert.Len(t, st.Simplices(0), 5)
	assert.Equal(t, []string{"(0,1,2)", "(2,3)", "(4)"}, strs(st.Maximal()))
	assert.Equal(t, []string{"(2)"}, strs(st.Link(s(0, 1))))
	assert.Nil(t, st.Simplices(-1))

	n := 0
	for range st.All() {
		n++
	}
	assert.Equal(t, st.Len(), n)
}

func TestTraverse_EarlyStop(t *testing.T) {
	t.Parallel()

	st := fixture()
	for _, o := range []simplextree.Order{simplextree.Preorder, simplextree.LevelOrder, simplextree.Maximal} {
		var seen []simplex.Simplex
		err := st.Traverse(o, func(x simplex.Simplex) bool {
			seen = append(seen, x)
			return len(seen) < 2
		})
		require.NoError(t, err)
		assert.Len(t, seen, 2, "order %v", o)
	}

	var seen int
	err := st.Traverse(simplextree.Cofaces, func(simplex.Simplex) bool {
		seen++
		return false
	}, simplextree.WithSimplex(s(2)))
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}

func TestTraverse_OptionErrors(t *testing.T) {
	t.Parallel()

	st := fixture()
	noop := func(simplex.Simplex) bool { return true }

	err := st.Traverse(simplextree.Faces, noop)
	assert.ErrorIs(t, err, simplextree.ErrOptionViolation)

	err = st.Traverse(simplextree.Skeleton, noop)
	assert.ErrorIs(t, err, simplextree.ErrOptionViolation)

	err = st.Traverse(simplextree.KSimplices, noop, simplextree.WithDim(-2))
	assert.ErrorIs(t, err, simplextree.ErrOptionViolation)

	err = st.Traverse(simplextree.Order(42), noop)
	assert.ErrorIs(t, err, simplextree.ErrUnknownOrder)
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	cases := map[string]simplextree.Order{
		"dfs":          simplextree.Preorder,
		"Preorder":     simplextree.Preorder,
		"bfs":          simplextree.LevelOrder,
		"level_order":  simplextree.LevelOrder,
		"levelorder":   simplextree.LevelOrder,
		"faces":        simplextree.Faces,
		"cofaces":      simplextree.Cofaces,
		"coface_roots": simplextree.CofaceRoots,
		"k_skeleton":   simplextree.Skeleton,
		"k_simplices":  simplextree.KSimplices,
		"maximal":      simplextree.Maximal,
		"link":         simplextree.Link,
	}
	for tag, want := range cases {
		got, err := simplextree.ParseOrder(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, got, tag)
	}
	assert.Equal(t, "coface_roots", simplextree.CofaceRoots.String())

	_, err := simplextree.ParseOrder("inorder")
	assert.ErrorIs(t, err, simplextree.ErrUnknownOrder)
}
