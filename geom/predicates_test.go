package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomesh/refine2d/geom"
)

func TestCCWAndOrientation(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}
	c := geom.Point{X: 0, Y: 1}

	assert.True(t, geom.CCW(a, b, c))
	assert.Equal(t, geom.CounterClockwise, geom.OrientationOf(a, b, c))
	assert.Equal(t, geom.Clockwise, geom.OrientationOf(a, c, b))
	assert.Equal(t, geom.Collinear, geom.OrientationOf(a, b, geom.Point{X: 2, Y: 0}))
}

func TestCircumcenterUnitRightTriangle(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 2, Y: 0}
	c := geom.Point{X: 0, Y: 2}

	center := geom.Circumcenter(a, b, c)
	// The circumcenter of a right triangle is the midpoint of the hypotenuse.
	assert.InDelta(t, 1, center.X, 1e-9)
	assert.InDelta(t, 1, center.Y, 1e-9)
}

func TestInCircumcircle(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}
	c := geom.Point{X: 0, Y: 1}

	inside := geom.Point{X: 0.25, Y: 0.25}
	outside := geom.Point{X: 5, Y: 5}

	assert.True(t, geom.InCircumcircle(a, b, c, inside))
	assert.False(t, geom.InCircumcircle(a, b, c, outside))
}

func TestSquaredMinimumSineEquilateral(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}
	c := geom.Point{X: 0.5, Y: math.Sqrt(3) / 2}

	got := geom.SquaredMinimumSine(a, b, c)
	want := math.Pow(math.Sin(math.Pi/3), 2)
	assert.InDelta(t, want, got, 1e-9)
}

func TestSquaredMinimumSineDegenerate(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}
	c := geom.Point{X: 2, Y: 0}

	assert.Equal(t, 0.0, geom.SquaredMinimumSine(a, b, c))
}

func TestEncroachesSegment(t *testing.T) {
	va := geom.Point{X: 0, Y: 0}
	vb := geom.Point{X: 2, Y: 0}

	assert.True(t, geom.EncroachesSegment(geom.Point{X: 1, Y: 0.1}, va, vb))
	assert.True(t, geom.EncroachesSegment(geom.Point{X: 1, Y: 1}, va, vb), "on the boundary of the diametral disk")
	assert.False(t, geom.EncroachesSegment(geom.Point{X: 1, Y: 2}, va, vb))
}
