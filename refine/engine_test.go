package refine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
	"github.com/gomesh/refine2d/refine"
	"github.com/gomesh/refine2d/region"
	"github.com/gomesh/refine2d/trait"
)

func buildSquare(t *testing.T) *core.Mesh {
	t.Helper()
	m := core.NewMesh()
	v := []core.VertexID{
		m.Insert(geom.Point{X: 0, Y: 0}),
		m.Insert(geom.Point{X: 10, Y: 0}),
		m.Insert(geom.Point{X: 10, Y: 10}),
		m.Insert(geom.Point{X: 0, Y: 10}),
	}
	m.InsertSegment(v[0], v[1])
	m.InsertSegment(v[1], v[2])
	m.InsertSegment(v[2], v[3])
	m.InsertSegment(v[3], v[0])
	region.Mark(m)
	return m
}

func TestRefineImprovesMinimumAngle(t *testing.T) {
	require := require.New(t)

	m := buildSquare(t)
	criteria := trait.NewMinAngleTraits(trait.WithMinAngle(20))

	before := worstSine(m, criteria)

	eng := refine.New(m, criteria)
	eng.FillQueue()
	eng.Run(200)

	after := worstSine(m, criteria)
	require.GreaterOrEqual(after, before, "refinement must never make the worst triangle worse")
	require.Equal(0, eng.Pending(), "a square domain must fully converge under a 20 degree bound")
}

// worstSine returns the minimum, over every marked finite face, of the
// squared-minimum-sine quality measure (higher is better).
func worstSine(tri *core.Mesh, criteria trait.Criteria) float64 {
	worst := 1.0
	for _, fid := range tri.FiniteFaces() {
		face, _ := tri.Face(fid)
		if !face.Marked {
			continue
		}
		a, _ := tri.Vertex(face.V[0])
		b, _ := tri.Vertex(face.V[1])
		c, _ := tri.Vertex(face.V[2])
		_, priority := criteria.IsBad(a.P, b.P, c.P)
		sine := 1 / priority
		if sine < worst {
			worst = sine
		}
	}
	return worst
}
