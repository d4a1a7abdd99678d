// SPDX-License-Identifier: MIT

package simplextree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splex/simplex"
	"github.com/katalvlaran/splex/simplextree"
)

var s = simplex.MustNew

// strs renders simplices for compact comparisons.
func strs(ss []simplex.Simplex) []string {
	out := make([]string, len(ss))
	for i, x := range ss {
		out[i] = x.String()
	}

	return out
}

func TestTree_Tetrahedron(t *testing.T) {
	t.Parallel()

	st := simplextree.New(s(0, 1, 2, 3))
	assert.Equal(t, []int{4, 6, 4, 1}, st.NSimplices())
	assert.Equal(t, 3, st.Dim())
	assert.Equal(t, 15, st.Len())
	assert.Equal(t, []int{0, 1, 2, 3}, st.Vertices())
	assert.Equal(t, "simplex tree with (4, 6, 4, 1) simplices of dimension (0, 1, 2, 3)", st.String())
	require.NoError(t, st.Verify())

	st.Insert(s(0, 1, 2)) // idempotent
	assert.Equal(t, []int{4, 6, 4, 1}, st.NSimplices())
}

func TestTree_RemoveCofaces(t *testing.T) {
	t.Parallel()

	st := simplextree.New(s(0, 1, 2, 3))
	st.Remove(s(0, 1, 2, 3))
	assert.Equal(t, []int{4, 6, 4}, st.NSimplices())
	require.NoError(t, st.Verify())

	st = simplextree.New(s(0, 1, 2, 3))
	st.Remove(s(0, 1, 2))
	assert.Equal(t, []int{4, 6, 3}, st.NSimplices())
	assert.False(t, st.Contains(s(0, 1, 2, 3)))
	assert.True(t, st.Contains(s(0, 1, 3)))
	require.NoError(t, st.Verify())

	st.Remove(s(1))
	assert.Equal(t, []int{3, 3, 1}, st.NSimplices())
	assert.Equal(t, []bool{true, false, false, true}, st.Find(s(0, 2, 3), s(0, 1), s(1), s(2, 3)))
	require.NoError(t, st.Verify())

	// absent: no-op
	st.Remove(s(7, 8))
	assert.Equal(t, []int{3, 3, 1}, st.NSimplices())

	st.Remove(simplex.Simplex{})
	assert.Equal(t, -1, st.Dim())
	assert.Zero(t, st.Len())
	require.NoError(t, st.Verify())
}

func TestTree_InsertTuplesFailsFast(t *testing.T) {
	t.Parallel()

	st := simplextree.New()
	err := st.InsertTuples([][]int{{0, 1}, {2, -3}})
	require.ErrorIs(t, err, simplex.ErrNegativeVertex)
	assert.Zero(t, st.Len())

	require.NoError(t, st.InsertTuples([][]int{{1, 0}, {2, 1}}))
	assert.Equal(t, []int{3, 2}, st.NSimplices())
}

func TestTree_Expand(t *testing.T) {
	t.Parallel()

	st := simplextree.New()
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			st.Insert(s(i, j))
		}
	}
	require.NoError(t, st.Expand(1))
	assert.Equal(t, []int{5, 10}, st.NSimplices())

	require.NoError(t, st.Expand(2))
	assert.Equal(t, []int{5, 10, 10}, st.NSimplices())

	require.NoError(t, st.Expand(10))
	assert.Equal(t, []int{5, 10, 10, 5, 1}, st.NSimplices())
	require.NoError(t, st.Verify())

	require.ErrorIs(t, st.Expand(-1), simplextree.ErrInvalidDimension)

	// a 4-cycle has no triangles to fill
	cyc := simplextree.New(s(0, 1), s(1, 2), s(2, 3), s(0, 3))
	require.NoError(t, cyc.Expand(3))
	assert.Equal(t, []int{4, 4}, cyc.NSimplices())
}

func TestTree_DegreeAdjacent(t *testing.T) {
	t.Parallel()

	st := simplextree.New(s(0, 1), s(1, 2), s(5))
	assert.Equal(t, []int{1, 2, 1, 0, 0}, st.Degree(0, 1, 2, 5, 9))
	assert.Equal(t, []int{0, 2}, st.Adjacent(1))
	assert.Empty(t, st.Adjacent(5))
}

func TestTree_Collapse(t *testing.T) {
	t.Parallel()

	st := simplextree.New(s(0, 1, 2))
	ok, err := st.Collapse(s(0, 1), s(0, 1, 2))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{3, 2}, st.NSimplices())

	tet := simplextree.New(s(0, 1, 2, 3))
	ok, err = tet.Collapse(s(0, 1), s(0, 1, 2))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []int{4, 6, 4, 1}, tet.NSimplices())

	_, err = tet.Collapse(s(0), s(0, 1, 2))
	assert.ErrorIs(t, err, simplextree.ErrNotFreePair)
	_, err = tet.Collapse(s(0, 9), s(0, 1, 9))
	assert.ErrorIs(t, err, simplextree.ErrSimplexNotFound)
}

// TestTree_MatchesClosureModel replays random insertions and removals and
// compares the tree with a brute-force set of faces after every step.
func TestTree_MatchesClosureModel(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	st := simplextree.New()
	model := map[simplex.Key]simplex.Simplex{}

	for step := 0; step < 300; step++ {
		x := s(rng.Perm(8)[:1+rng.Intn(4)]...)
		if rng.Intn(3) > 0 {
			st.Insert(x)
			for _, f := range x.AllFaces() {
				model[f.Key()] = f
			}
		} else {
			st.Remove(x)
			if _, present := model[x.Key()]; present {
				for k, y := range model {
					if x.IsFaceOf(y) {
						delete(model, k)
					}
				}
			}
		}

		require.NoError(t, st.Verify(), "step %d", step)
		want := []int{}
		for _, y := range model {
			for len(want) <= y.Dim() {
				want = append(want, 0)
			}
			want[y.Dim()]++
		}
		got := st.NSimplices()
		if len(got) == 0 {
			got = []int{}
		}
		require.Equal(t, want, got, "step %d", step)
		for _, y := range model {
			require.True(t, st.Contains(y))
		}
		require.Len(t, st.Skeleton(10), len(model))
	}
}
