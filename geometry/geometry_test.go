// SPDX-License-Identifier: MIT

package geometry_test

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splex/filtration"
	"github.com/katalvlaran/splex/geometry"
	"github.com/katalvlaran/splex/simplex"
	"github.com/katalvlaran/splex/simplextree"
)

var s = simplex.MustNew

// right is the 3-4-5 triangle.
var right = [][]float64{{0, 0}, {3, 0}, {0, 4}}

func rightPD(t *testing.T) []float64 {
	t.Helper()
	pd, err := geometry.PairwiseDistances(right)
	require.NoError(t, err)

	return pd
}

func TestPairwiseDistances(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{3, 4, 5}, rightPD(t))

	_, err := geometry.PairwiseDistances([][]float64{{1, 2}})
	require.ErrorIs(t, err, geometry.ErrNoPoints)
	_, err = geometry.PairwiseDistances([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, geometry.ErrRaggedPoints)
}

func TestEnclosingRadius(t *testing.T) {
	t.Parallel()

	r, err := geometry.EnclosingRadius(rightPD(t))
	require.NoError(t, err)
	assert.Equal(t, 2.0, r)

	_, err = geometry.EnclosingRadius([]float64{1, 2})
	require.ErrorIs(t, err, geometry.ErrBadDistances)
	_, err = geometry.EnclosingRadius([]float64{1, -2, 3})
	require.ErrorIs(t, err, geometry.ErrBadDistances)
}

func TestRips(t *testing.T) {
	t.Parallel()

	pd := rightPD(t)
	cases := []struct {
		name   string
		radius float64
		dim    int
		shape  []int
	}{
		{"one edge", 1.6, 2, []int{3, 1}},
		{"full triangle", 2.5, 2, []int{3, 3, 1}},
		{"1-skeleton only", 2.5, 1, []int{3, 3}},
		{"vertices only", 2.5, 0, []int{3}},
		{"no edges", 0, 2, []int{3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := geometry.Rips(pd, tc.radius, tc.dim)
			require.NoError(t, err)
			assert.Equal(t, tc.shape, st.NSimplices())
		})
	}

	_, err := geometry.Rips(pd, -1, 2)
	require.ErrorIs(t, err, geometry.ErrNegativeRadius)
	_, err = geometry.Rips(pd, 1, -1)
	require.ErrorIs(t, err, simplextree.ErrInvalidDimension)
}

func TestRips_GrowsWithRadius(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	points := make([][]float64, 30)
	for i := range points {
		points[i] = []float64{rng.Float64(), rng.Float64()}
	}
	pd, err := geometry.PairwiseDistances(points)
	require.NoError(t, err)

	prevEdges := 0
	for _, r := range []float64{0, 0.05, 0.1, 0.2, 0.4, 0.8} {
		st, err := geometry.Rips(pd, r, 2)
		require.NoError(t, err)
		shape := st.NSimplices()
		assert.Equal(t, 30, shape[0])
		edges := 0
		if len(shape) > 1 {
			edges = shape[1]
		}
		assert.GreaterOrEqual(t, edges, prevEdges, "r=%v", r)
		prevEdges = edges
		require.NoError(t, st.Verify())
	}
	assert.Equal(t, 30*29/2, prevEdges) // 2·0.8 exceeds the unit-square diagonal
}

func TestFlagWeight(t *testing.T) {
	t.Parallel()

	pd := rightPD(t)
	w, err := geometry.FlagWeight(pd, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w(s(1)))
	assert.Equal(t, 4.0, w(s(0, 2)))
	assert.Equal(t, 5.0, w(s(0, 1, 2)))

	w, err = geometry.FlagWeight(pd, []float64{0, 0, 7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, w(s(0, 2)))
	assert.Equal(t, 3.0, w(s(0, 1)))

	_, err = geometry.FlagWeight(pd, []float64{1})
	require.ErrorIs(t, err, geometry.ErrWeightCount)
}

func TestLowerStar(t *testing.T) {
	t.Parallel()

	w := geometry.LowerStar([]float64{0.5, 2, 1})
	assert.Equal(t, 2.0, w(s(0, 1, 2)))
	assert.Equal(t, 1.0, w(s(0, 2)))
	assert.Equal(t, 0.0, w(simplex.Simplex{}))
}

func TestRipsFiltration(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	for _, b := range []filtration.Backend{filtration.Set, filtration.Rank} {
		f, err := geometry.RipsFiltration(rightPD(t), 2.5, 2, b, geometry.WithLogger(logger))
		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.Equal(t, []float64{0, 0, 0, 3, 4, 5, 5}, f.Indices())
		assert.True(t, slices.IsSorted(f.Indices()))
		last := f.Simplices()[6]
		assert.Equal(t, "(0,1,2)", last.String())
	}
	assert.Contains(t, buf.String(), "rips 1-skeleton")
	assert.Contains(t, buf.String(), "rips filtration")
}
