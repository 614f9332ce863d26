package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomesh/refine2d/builder"
	"github.com/gomesh/refine2d/geom"
)

func TestRectangleProducesFourConstrainedEdges(t *testing.T) {
	require := require.New(t)

	pslg, err := builder.Rectangle(10, 5)
	require.NoError(err)
	require.Len(pslg.Points, 4)
	require.Len(pslg.Segments, 4)
}

func TestRectangleRejectsNonPositiveDimensions(t *testing.T) {
	_, err := builder.Rectangle(0, 5)
	assert.ErrorIs(t, err, builder.ErrInvalidRadius)
}

func TestPolygonRejectsTooFewVertices(t *testing.T) {
	_, err := builder.Polygon(2, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestWheelHasHubPlusRimPoints(t *testing.T) {
	require := require.New(t)

	pslg, err := builder.Wheel(6, 10)
	require.NoError(err)
	require.Len(pslg.Points, 7)
	require.Len(pslg.Segments, 12) // 6 rim edges + 6 spokes
}

func TestStarPolygonAlternatesRadii(t *testing.T) {
	require := require.New(t)

	pslg, err := builder.StarPolygon(5, 10, 3)
	require.NoError(err)
	require.Len(pslg.Points, 10)
}

func TestRandomPointsRequiresRNG(t *testing.T) {
	_, err := builder.RandomPoints(10, 5, 5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomPointsDeterministicWithSeed(t *testing.T) {
	require := require.New(t)

	a, err := builder.RandomPoints(20, 5, 5, builder.WithSeed(42))
	require.NoError(err)
	b, err := builder.RandomPoints(20, 5, 5, builder.WithSeed(42))
	require.NoError(err)
	require.Equal(a.Points, b.Points)
}

func TestGridSubdividesBoundary(t *testing.T) {
	require := require.New(t)

	pslg, err := builder.Grid(10, 10, 4, 4)
	require.NoError(err)
	require.Len(pslg.Points, 16) // 4 points per side x 4 sides
}

func TestPolylineHasNoClosingEdge(t *testing.T) {
	pslg := builder.Polyline([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	assert.Len(t, pslg.Segments, 2)
}
