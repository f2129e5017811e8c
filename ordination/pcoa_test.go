package ordination_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ldaviz/ordination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPCoA_TwoPoints verifies that two points end up separated by exactly
// their input distance (a 2-point configuration embeds perfectly in 1D).
func TestPCoA_TwoPoints(t *testing.T) {
	const d = 0.8
	dm := [][]float64{
		{0, d},
		{d, 0},
	}

	coords, err := ordination.PCoA(dm, 2)
	require.NoError(t, err)
	require.Len(t, coords, 2)

	dx := coords[0][0] - coords[1][0]
	dy := coords[0][1] - coords[1][1]
	assert.InDelta(t, d, math.Hypot(dx, dy), 1e-9, "embedded distance must match input")
}

// TestPCoA_TriangleDistancesPreserved verifies a 3-point Euclidean
// configuration is reproduced exactly: any triangle embeds in 2D.
func TestPCoA_TriangleDistancesPreserved(t *testing.T) {
	// Triangle with side lengths 3, 4, 5.
	dm := [][]float64{
		{0, 3, 4},
		{3, 0, 5},
		{4, 5, 0},
	}

	coords, err := ordination.PCoA(dm, 2)
	require.NoError(t, err)
	require.Len(t, coords, 3)

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			dx := coords[i][0] - coords[j][0]
			dy := coords[i][1] - coords[j][1]
			assert.InDelta(t, dm[i][j], math.Hypot(dx, dy), 1e-9, "pairwise distance %d-%d", i, j)
		}
	}
}

// TestPCoA_BadShape verifies the shape sentinels.
func TestPCoA_BadShape(t *testing.T) {
	_, err := ordination.PCoA(nil, 2)
	assert.ErrorIs(t, err, ordination.ErrDistanceShape, "empty matrix must error")

	_, err = ordination.PCoA([][]float64{{0, 1}, {1}}, 2)
	assert.ErrorIs(t, err, ordination.ErrDistanceShape, "ragged matrix must error")

	_, err = ordination.PCoA([][]float64{{0}}, 0)
	assert.ErrorIs(t, err, ordination.ErrDistanceShape, "non-positive dims must error")
}

// TestJSPCoA_ShapeAndDeterminism verifies the default projection returns K×2
// coordinates and is bit-identical across calls.
func TestJSPCoA_ShapeAndDeterminism(t *testing.T) {
	dists := [][]float64{
		{0.7, 0.2, 0.1},
		{0.1, 0.3, 0.6},
		{0.25, 0.5, 0.25},
		{0.4, 0.4, 0.2},
	}

	a, err := ordination.JSPCoA(dists)
	require.NoError(t, err)
	require.Len(t, a, 4)
	for _, row := range a {
		assert.Len(t, row, 2)
	}

	b, err := ordination.JSPCoA(dists)
	require.NoError(t, err)
	assert.Equal(t, a, b, "projection must be deterministic")
}

// TestJSPCoA_SeparatesDissimilarTopics checks that a pair of near-identical
// distributions lands closer together than a pair of very different ones.
func TestJSPCoA_SeparatesDissimilarTopics(t *testing.T) {
	dists := [][]float64{
		{0.9, 0.05, 0.05},
		{0.89, 0.06, 0.05},
		{0.05, 0.05, 0.9},
	}

	coords, err := ordination.JSPCoA(dists)
	require.NoError(t, err)

	near := math.Hypot(coords[0][0]-coords[1][0], coords[0][1]-coords[1][1])
	far := math.Hypot(coords[0][0]-coords[2][0], coords[0][1]-coords[2][1])
	assert.Less(t, near, far, "similar topics must be closer than dissimilar ones")
}
