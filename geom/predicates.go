package geom

import "math"

// Orientation classifies the turn from a->b->c.
type Orientation int

const (
	// Clockwise means c lies to the right of directed line a->b.
	Clockwise Orientation = -1
	// Collinear means a, b, c lie on a common line.
	Collinear Orientation = 0
	// CounterClockwise means c lies to the left of directed line a->b.
	CounterClockwise Orientation = 1
)

// Cross returns twice the signed area of triangle (a,b,c). Its sign gives
// the orientation of the triangle: positive for counter-clockwise.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// OrientationOf classifies the turn a->b->c using Cross.
func OrientationOf(a, b, c Point) Orientation {
	v := Cross(a, b, c)
	switch {
	case v > 0:
		return CounterClockwise
	case v < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// CCW reports whether a, b, c are given in strict counter-clockwise order.
func CCW(a, b, c Point) bool {
	return Cross(a, b, c) > 0
}

// SquaredDistance returns the squared Euclidean distance between p and q.
// Squared distances avoid a sqrt and are sufficient for every comparison
// this engine performs (priority ordering, encroachment, cluster radii).
func SquaredDistance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Circumcenter returns the center of the circle through a, b, c.
// The triangle must be non-degenerate (a, b, c not collinear).
func Circumcenter(a, b, c Point) Point {
	ax, ay := a.X, a.Y
	bx, by := b.X-ax, b.Y-ay
	cx, cy := c.X-ax, c.Y-ay

	d := 2 * (bx*cy - by*cx)
	bLen2 := bx*bx + by*by
	cLen2 := cx*cx + cy*cy

	ux := (bLen2*cy - cLen2*by) / d
	uy := (cLen2*bx - bLen2*cx) / d

	return Point{ax + ux, ay + uy}
}

// InCircumcircle reports whether d lies strictly inside the circle through
// a, b, c. It assumes a, b, c are given in counter-clockwise order; callers
// must canonicalize orientation before calling (core.Mesh keeps every face
// counter-clockwise, so GetConflicts passes face vertices in stored order).
func InCircumcircle(a, b, c, d Point) bool {
	// Standard incircle determinant, translated so d is the origin.
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	aLen2 := ax*ax + ay*ay
	bLen2 := bx*bx + by*by
	cLen2 := cx*cx + cy*cy

	det := ax*(by*cLen2-bLen2*cy) -
		ay*(bx*cLen2-bLen2*cx) +
		aLen2*(bx*cy-by*cx)

	return det > 0
}

// SquaredMinimumSine returns the minimum, over the triangle's three angles,
// of the squared sine of that angle. By the law of sines this is minimized
// at the angle opposite the shortest side, so it is a monotone proxy for
// the triangle's minimum angle and the standard quality measure this
// engine sorts bad faces by (smaller is worse).
func SquaredMinimumSine(a, b, c Point) float64 {
	s := math.Inf(1)
	if v := squaredSineAt(a, b, c); v < s {
		s = v
	}
	if v := squaredSineAt(b, c, a); v < s {
		s = v
	}
	if v := squaredSineAt(c, a, b); v < s {
		s = v
	}
	return s
}

// squaredSineAt returns sin^2 of the angle at vertex v of triangle (v,u,w).
func squaredSineAt(v, u, w Point) float64 {
	ux, uy := u.X-v.X, u.Y-v.Y
	wx, wy := w.X-v.X, w.Y-v.Y

	cross := ux*wy - uy*wx
	denom := (ux*ux + uy*uy) * (wx*wx + wy*wy)
	if denom == 0 {
		return 0
	}
	return (cross * cross) / denom
}

// EncroachesSegment reports whether p lies in the closed diametral disk of
// segment (va, vb): the smallest circle having va and vb as a diameter.
// This is the Gabriel encroachment test of section 4.3 of the spec; the
// segment is locally Gabriel with respect to p exactly when this is false.
func EncroachesSegment(p, va, vb Point) bool {
	return p.Sub(va).Dot(p.Sub(vb)) <= 0
}
