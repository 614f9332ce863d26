package geom

// Point is a planar point in Cartesian coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p-q as a free vector.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p scaled by t.
func (p Point) Scale(t float64) Point {
	return Point{p.X * t, p.Y * t}
}

// Dot returns the dot product of p and q, treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Midpoint returns the midpoint of segment p-q.
func Midpoint(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}
