package builder

import (
	"math"

	"github.com/gomesh/refine2d/engine"
	"github.com/gomesh/refine2d/geom"
)

// MinPolygonVertices is the fewest vertices Polygon, Wheel and StarPolygon
// will accept: three, the minimum a closed planar loop requires.
const MinPolygonVertices = 3

// Rectangle returns a PSLG whose four corners and edges describe the
// axis-aligned rectangle [0,w] x [0,h], with all four edges constrained.
func Rectangle(w, h float64) (engine.PSLG, error) {
	if w <= 0 || h <= 0 {
		return engine.PSLG{}, ErrInvalidRadius
	}
	return engine.PSLG{
		Points: []geom.Point{
			{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h},
		},
		Segments: closedLoop(4),
	}, nil
}

// Grid returns a PSLG whose boundary is the rectangle [0,w] x [0,h], with
// rows-1 and cols-1 additional Steiner points along each edge so the
// initial triangulation's boundary is evenly subdivided before refinement
// ever runs, the same way a structured mesh's outer ring is seeded.
func Grid(w, h float64, rows, cols int) (engine.PSLG, error) {
	if rows < 1 || cols < 1 {
		return engine.PSLG{}, ErrTooFewVertices
	}
	if w <= 0 || h <= 0 {
		return engine.PSLG{}, ErrInvalidRadius
	}

	var pts []geom.Point
	addEdge := func(a, b geom.Point, n int) {
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			pts = append(pts, geom.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
		}
	}
	corners := [4]geom.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	addEdge(corners[0], corners[1], cols)
	addEdge(corners[1], corners[2], rows)
	addEdge(corners[2], corners[3], cols)
	addEdge(corners[3], corners[0], rows)

	return engine.PSLG{Points: pts, Segments: closedLoop(len(pts))}, nil
}

// Polygon returns a PSLG for the regular n-gon of the given circumradius
// centered on the origin, with every edge constrained. WithJitter, given
// WithSeed or WithRand, perturbs each vertex by up to that fraction of the
// polygon's edge length.
func Polygon(n int, radius float64, opts ...Option) (engine.PSLG, error) {
	if n < MinPolygonVertices {
		return engine.PSLG{}, ErrTooFewVertices
	}
	if radius <= 0 {
		return engine.PSLG{}, ErrInvalidRadius
	}
	cfg := newConfig(opts...)
	pts := regularPoints(n, radius, 0)
	applyJitter(pts, edgeLength(n, radius), cfg)
	return engine.PSLG{Points: pts, Segments: closedLoop(n)}, nil
}

// Wheel returns a PSLG for a regular n-gon rim around a center hub point,
// with the rim edges constrained and each spoke from the hub to a rim
// vertex constrained as well, producing n triangular sectors before any
// refinement runs.
func Wheel(n int, radius float64, opts ...Option) (engine.PSLG, error) {
	if n < MinPolygonVertices {
		return engine.PSLG{}, ErrTooFewVertices
	}
	if radius <= 0 {
		return engine.PSLG{}, ErrInvalidRadius
	}
	cfg := newConfig(opts...)

	rim := regularPoints(n, radius, 0)
	applyJitter(rim, edgeLength(n, radius), cfg)
	pts := append([]geom.Point{{X: 0, Y: 0}}, rim...)
	segs := closedLoopFrom(1, n)
	for i := 0; i < n; i++ {
		segs = append(segs, [2]int{0, i + 1})
	}
	return engine.PSLG{Points: pts, Segments: segs}, nil
}

// StarPolygon returns a PSLG for a 2n-gon alternating between outer and
// inner radius at every vertex, the classic star outline (a hexagram is
// StarPolygon(6, ...) with a deep inner radius).
func StarPolygon(n int, outer, inner float64) (engine.PSLG, error) {
	if n < MinPolygonVertices {
		return engine.PSLG{}, ErrTooFewVertices
	}
	if outer <= 0 || inner <= 0 {
		return engine.PSLG{}, ErrInvalidRadius
	}

	pts := make([]geom.Point, 2*n)
	for i := 0; i < n; i++ {
		outerAngle := 2 * math.Pi * float64(i) / float64(n)
		innerAngle := outerAngle + math.Pi/float64(n)
		pts[2*i] = geom.Point{X: outer * math.Cos(outerAngle), Y: outer * math.Sin(outerAngle)}
		pts[2*i+1] = geom.Point{X: inner * math.Cos(innerAngle), Y: inner * math.Sin(innerAngle)}
	}
	return engine.PSLG{Points: pts, Segments: closedLoop(len(pts))}, nil
}

// Polyline returns a PSLG whose points are pts in order, connected by a
// constrained open chain (n-1 segments, no closing edge back to the
// start). Useful for embedding a crack or a fault line inside a larger
// domain rather than describing the domain's own boundary.
func Polyline(pts []geom.Point) engine.PSLG {
	segs := make([][2]int, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		segs = append(segs, [2]int{i, i + 1})
	}
	return engine.PSLG{Points: pts, Segments: segs}
}

// RandomPoints scatters n unconstrained points uniformly inside
// [0,w] x [0,h]. The returned PSLG has no segments: callers typically
// merge its Points into a boundary PSLG (e.g. Rectangle) to seed a
// refinement run with extra interior density, since engine.Run accepts
// only one PSLG, not a union of several.
func RandomPoints(n int, w, h float64, opts ...Option) (engine.PSLG, error) {
	if n < 1 {
		return engine.PSLG{}, ErrTooFewVertices
	}
	if w <= 0 || h <= 0 {
		return engine.PSLG{}, ErrInvalidRadius
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return engine.PSLG{}, ErrNeedRandSource
	}

	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: cfg.rng.Float64() * w, Y: cfg.rng.Float64() * h}
	}
	return engine.PSLG{Points: pts}, nil
}

// applyJitter perturbs each point in pts by a random offset up to
// cfg.jitter * scale in each axis, in place. A no-op if cfg.jitter is zero
// or no RNG was configured.
func applyJitter(pts []geom.Point, scale float64, cfg config) {
	if cfg.jitter <= 0 || cfg.rng == nil {
		return
	}
	for i := range pts {
		pts[i].X += (cfg.rng.Float64()*2 - 1) * cfg.jitter * scale
		pts[i].Y += (cfg.rng.Float64()*2 - 1) * cfg.jitter * scale
	}
}

// edgeLength returns the side length of a regular n-gon with the given
// circumradius.
func edgeLength(n int, radius float64) float64 {
	return 2 * radius * math.Sin(math.Pi/float64(n))
}

// regularPoints lays out n points evenly spaced on a circle of the given
// radius, starting at phase (radians) and proceeding counter-clockwise.
func regularPoints(n int, radius, phase float64) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = geom.Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return pts
}

// closedLoop returns the n segments connecting points 0..n-1 in a cycle.
func closedLoop(n int) [][2]int {
	return closedLoopFrom(0, n)
}

// closedLoopFrom is closedLoop but indices start at offset (used by Wheel,
// whose rim points start after the hub at index 0).
func closedLoopFrom(offset, n int) [][2]int {
	segs := make([][2]int, n)
	for i := 0; i < n; i++ {
		segs[i] = [2]int{offset + i, offset + (i+1)%n}
	}
	return segs
}
