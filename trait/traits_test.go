package trait_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomesh/refine2d/geom"
	"github.com/gomesh/refine2d/trait"
)

func TestMinAngleTraitsEquilateralIsGood(t *testing.T) {
	c := trait.NewMinAngleTraits()
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}
	cc := geom.Point{X: 0.5, Y: math.Sqrt(3) / 2}

	bad, _ := c.IsBad(a, b, cc)
	assert.False(t, bad)
}

func TestMinAngleTraitsNeedleIsBad(t *testing.T) {
	c := trait.NewMinAngleTraits()
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	cc := geom.Point{X: 5, Y: 0.05}

	bad, priority := c.IsBad(a, b, cc)
	assert.True(t, bad)
	assert.Greater(t, priority, 0.0)
}

func TestWithMaxAreaFlagsLargeGoodTriangle(t *testing.T) {
	c := trait.NewMinAngleTraits(trait.WithMaxArea(1))
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	cc := geom.Point{X: 5, Y: 10 * math.Sqrt(3) / 2}

	bad, _ := c.IsBad(a, b, cc)
	assert.True(t, bad, "equilateral but oversized triangle must still be flagged")
}

func TestWithMinAngleRejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { trait.WithMinAngle(0) })
	assert.Panics(t, func() { trait.WithMinAngle(21) })
}
