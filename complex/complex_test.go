// SPDX-License-Identifier: MIT

package complex_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splex/combin"
	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/simplex"
)

var s = simplex.MustNew

var backends = []complex.Backend{complex.Set, complex.Tree, complex.Rank}

func strs(ss []simplex.Simplex) []string {
	out := make([]string, len(ss))
	for i, x := range ss {
		out[i] = x.String()
	}

	return out
}

func mustNew(t *testing.T, b complex.Backend, ss ...simplex.Simplex) complex.Complex {
	t.Helper()
	c, err := complex.New(b, ss...)
	require.NoError(t, err)

	return c
}

func TestComplex_Tetrahedron(t *testing.T) {
	t.Parallel()

	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			c := mustNew(t, b, s(0, 1, 2, 3))
			assert.Equal(t, []int{4, 6, 4, 1}, c.Shape())
			assert.Equal(t, 3, c.Dim())
			assert.Equal(t, 15, c.Len())
			assert.Equal(t, 6, c.Card(1))
			assert.Zero(t, c.Card(4))
			assert.Zero(t, c.Card(-1))
			assert.Equal(t, "3-d complex with (4, 6, 4, 1)-simplices of dimension (0, 1, 2, 3)", complex.Describe(c))
			assert.True(t, c.Contains(s(1, 3)))
			assert.True(t, c.Contains(simplex.Simplex{}))
			assert.False(t, c.Contains(s(0, 4)))
			require.NoError(t, complex.CheckClosure(c))

			assert.Equal(t, []string{"(0,1,2)", "(0,1,2,3)"}, strs(c.Cofaces(s(0, 1, 2))))
			assert.Equal(t, []string{"(2,3)", "(0,2,3)", "(1,2,3)", "(0,1,2,3)"}, strs(c.Cofaces(s(2, 3))))
			assert.Nil(t, c.Cofaces(s(4)))
			assert.Len(t, c.Simplices(), 15)
		})
	}
}

func TestComplex_FacesOrder(t *testing.T) {
	t.Parallel()

	for _, b := range []complex.Backend{complex.Set, complex.Tree} {
		c := mustNew(t, b, s(0, 1, 2, 3))
		assert.Equal(t, []string{"(0,1)", "(0,2)", "(0,3)", "(1,2)", "(1,3)", "(2,3)"}, strs(c.Faces(1)), b.String())
	}

	// colex: (0,1) (0,2) (1,2) (0,3) (1,3) (2,3)
	c := mustNew(t, complex.Rank, s(0, 1, 2, 3))
	assert.Equal(t, []string{"(0,1)", "(0,2)", "(1,2)", "(0,3)", "(1,3)", "(2,3)"}, strs(c.Faces(1)))
	rc := c.(*complex.RankComplex)
	assert.Equal(t, []uint64{0, 1, 2, 3, 4, 5}, rc.Ranks(1))
	assert.Nil(t, rc.Ranks(7))
}

func TestComplex_RemoveScenarios(t *testing.T) {
	t.Parallel()

	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			c := mustNew(t, b, s(0, 1, 2, 3))
			require.NoError(t, c.Remove(s(0, 1, 2, 3)))
			assert.Equal(t, []int{4, 6, 4}, c.Shape())

			c = mustNew(t, b, s(0, 1, 2, 3))
			require.NoError(t, c.Remove(s(0, 1)))
			assert.Equal(t, []int{4, 5, 2}, c.Shape())
			assert.False(t, c.Contains(s(0, 1, 3)))
			assert.True(t, c.Contains(s(0, 2, 3)))
			require.NoError(t, complex.CheckClosure(c))

			require.NoError(t, c.Remove(s(3)))
			assert.Equal(t, []int{3, 2}, c.Shape())

			err := c.Remove(s(3))
			require.ErrorIs(t, err, complex.ErrSimplexNotFound)
			assert.Equal(t, []int{3, 2}, c.Shape())

			c.Discard(s(3)) // no-op
			assert.Equal(t, []int{3, 2}, c.Shape())

			c.Discard(simplex.Simplex{})
			assert.Equal(t, -1, c.Dim())
			assert.Zero(t, c.Len())
			assert.Equal(t, "empty complex", complex.Describe(c))
		})
	}
}

func TestComplex_AddIdempotent(t *testing.T) {
	t.Parallel()

	for _, b := range backends {
		c := mustNew(t, b, s(0, 1, 2))
		require.NoError(t, c.Add(s(1, 2)))
		require.NoError(t, c.Add(s(0, 1, 2)))
		require.NoError(t, c.Add(simplex.Simplex{}))
		assert.Equal(t, []int{3, 3, 1}, c.Shape(), b.String())
	}
}

func TestComplex_CrossBackendAgreement(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	cs := make([]complex.Complex, len(backends))
	for i, b := range backends {
		cs[i] = mustNew(t, b)
	}
	for step := 0; step < 200; step++ {
		k := 1 + rng.Intn(4)
		vs := rng.Perm(12)[:k]
		x := s(vs...)
		add := rng.Intn(3) > 0
		for _, c := range cs {
			if add {
				require.NoError(t, c.Add(x))
			} else {
				c.Discard(x)
			}
		}
		for _, c := range cs[1:] {
			require.Equal(t, cs[0].Shape(), c.Shape(), "step %d", step)
			require.True(t, complex.Equal(cs[0], c), "step %d", step)
		}
	}
	for _, c := range cs {
		require.NoError(t, complex.CheckClosure(c))
	}
}

func TestComplex_TreeVersusRankRandomWalk(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	tree := complex.NewTree()
	rank := complex.NewRank()
	for step := 0; step < 100; step++ {
		x := s(rng.Perm(10)[:1+rng.Intn(5)]...)
		if rng.Intn(2) == 0 {
			require.NoError(t, tree.Add(x))
			require.NoError(t, rank.Add(x))
		} else {
			tree.Discard(x)
			rank.Discard(x)
		}
		require.Equal(t, tree.Shape(), rank.Shape(), "step %d", step)
	}
	assert.Equal(t, strs(tree.Simplices()), strs(complex.NewSet(rank.Simplices()...).Simplices()))
}

func TestRank_LinearMatchesIndexed(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	idx := complex.NewRank()
	lin := complex.NewRank(complex.WithLinearCofaces())
	for step := 0; step < 150; step++ {
		x := s(rng.Perm(9)[:1+rng.Intn(4)]...)
		if rng.Intn(3) > 0 {
			require.NoError(t, idx.Add(x))
			require.NoError(t, lin.Add(x))
		} else {
			idx.Discard(x)
			lin.Discard(x)
		}
		require.Equal(t, idx.Shape(), lin.Shape(), "step %d", step)
		q := s(rng.Intn(9))
		require.Equal(t, strs(idx.Cofaces(q)), strs(lin.Cofaces(q)), "step %d", step)
	}
}

func TestRank_OverflowLeavesComplexUnchanged(t *testing.T) {
	t.Parallel()

	c := complex.NewRank()
	require.NoError(t, c.Add(s(0, 1)))
	huge := s(1<<40, 1<<41, 1<<42, 1<<43, 1<<44, 1<<45)
	err := c.Add(huge)
	require.ErrorIs(t, err, combin.ErrOverflow)
	assert.Equal(t, []int{2, 1}, c.Shape())
	assert.False(t, c.Contains(huge))
}

func TestParseBackend(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]complex.Backend{
		"set": complex.Set, "tree": complex.Tree, "SimplexTree": complex.Tree,
		"simplex_tree": complex.Tree, " rank ": complex.Rank,
	} {
		got, err := complex.ParseBackend(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := complex.ParseBackend("hash")
	require.ErrorIs(t, err, complex.ErrUnknownBackend)

	_, err = complex.New(complex.Backend(9))
	require.ErrorIs(t, err, complex.ErrUnknownBackend)
	assert.Equal(t, "Backend(9)", complex.Backend(9).String())
}

func TestFromTuples(t *testing.T) {
	t.Parallel()

	c, err := complex.FromTuples(complex.Tree, [][]int{{2, 0, 1}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 1}, c.Shape())

	_, err = complex.FromTuples(complex.Set, [][]int{{0, 1}, {-1}})
	require.ErrorIs(t, err, simplex.ErrNegativeVertex)
}

func TestAllStopsEarly(t *testing.T) {
	t.Parallel()

	for _, b := range backends {
		c := mustNew(t, b, s(0, 1, 2, 3))
		n := 0
		for range c.All() {
			n++
			if n == 5 {
				break
			}
		}
		assert.Equal(t, 5, n, b.String())
	}
}

func TestTreeComplex_ExposesTree(t *testing.T) {
	t.Parallel()

	c := complex.NewTree(s(0, 1), s(1, 2), s(0, 2))
	require.NoError(t, c.Tree().Expand(2))
	assert.Equal(t, []int{3, 3, 1}, c.Shape())
	assert.Equal(t, "2-d complex with (3, 3, 1)-simplices of dimension (0, 1, 2)", c.String())
}
