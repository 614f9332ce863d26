package trait

import (
	"math"

	"github.com/gomesh/refine2d/geom"
)

// Criteria decides whether a triangle needs further refinement and, for
// triangles that do, produces a priority ordering: BadFaces with a larger
// Priority are refined first. The refinement engine never inspects the
// geometry of Priority's scale directly, only compares two Priority values
// against each other, so an implementation is free to blend several
// measures (angle, area, gradation) into one number.
type Criteria interface {
	// IsBad reports whether the triangle (a, b, c) violates the quality
	// bound, and if so its refinement priority.
	IsBad(a, b, c geom.Point) (bad bool, priority float64)
}

// minAngleConfig holds MinAngleTraits' resolved parameters.
type minAngleConfig struct {
	sinSquaredBound float64
	maxArea         float64 // 0 means "no area bound"
}

// Option customizes a MinAngleTraits constructed with NewMinAngleTraits.
type Option func(*minAngleConfig)

// WithMinAngle sets the minimum interior angle, in degrees, a triangle must
// have to be considered good. Shewchuk's terminator analysis guarantees
// termination for bounds up to 20.7 degrees; WithMinAngle panics outside
// (0, 20.7], since a larger bound can make refinement loop forever on small
// input angles that package cluster's Open Question 9.3 exists to handle.
func WithMinAngle(degrees float64) Option {
	if degrees <= 0 || degrees > 20.7 {
		panic("trait: WithMinAngle must be in (0, 20.7] degrees")
	}
	return func(c *minAngleConfig) {
		s := math.Sin(degrees * math.Pi / 180)
		c.sinSquaredBound = s * s
	}
}

// WithMaxArea caps the area any accepted triangle may have. It panics if
// area is zero or negative; without this option there is no area bound.
func WithMaxArea(area float64) Option {
	if area <= 0 {
		panic("trait: WithMaxArea must be positive")
	}
	return func(c *minAngleConfig) {
		c.maxArea = area
	}
}

// defaultMinAngleDegrees is Shewchuk's classic bound: triangles below it are
// guaranteed to be eliminable without infinite recursion on well-formed
// input (no input angle under 2*B).
const defaultMinAngleDegrees = 20.7

// MinAngleTraits is the Criteria this repository ships by default: a
// triangle is bad if its smallest angle is under a configured bound, or
// (when configured) its area exceeds a cap. Priority is the reciprocal of
// the squared minimum sine, so the most needle-like triangles sort first.
type MinAngleTraits struct {
	cfg minAngleConfig
}

// NewMinAngleTraits builds a MinAngleTraits from the given options. With no
// options it uses Shewchuk's 20.7 degree bound and no area cap.
func NewMinAngleTraits(opts ...Option) *MinAngleTraits {
	cfg := minAngleConfig{}
	WithMinAngle(defaultMinAngleDegrees)(&cfg)
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MinAngleTraits{cfg: cfg}
}

// IsBad implements Criteria.
func (t *MinAngleTraits) IsBad(a, b, c geom.Point) (bool, float64) {
	sinSq := geom.SquaredMinimumSine(a, b, c)

	bad := sinSq < t.cfg.sinSquaredBound
	if t.cfg.maxArea > 0 {
		if area := triangleArea(a, b, c); area > t.cfg.maxArea {
			bad = true
		}
	}
	if sinSq <= 0 {
		return bad, math.Inf(1)
	}
	return bad, 1 / sinSq
}

func triangleArea(a, b, c geom.Point) float64 {
	return math.Abs(geom.Cross(a, b, c)) / 2
}

var _ Criteria = (*MinAngleTraits)(nil)
