package region_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
	"github.com/gomesh/refine2d/region"
)

// squareMesh builds a unit square PSLG (four corners, four constrained
// boundary edges) triangulated into two triangles by the diagonal.
func squareMesh(t *testing.T) (*core.Mesh, []core.VertexID) {
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
	return m, v
}

func TestMarkFlagsInteriorNotExterior(t *testing.T) {
	require := require.New(t)
	m, _ := squareMesh(t)

	region.Mark(m)

	f, ok := m.Locate(geom.Point{X: 5, Y: 5})
	require.True(ok)
	face, _ := m.Face(f)
	require.True(face.Marked, "a face inside the square's boundary must be marked")

	inf, _ := m.Face(m.InfiniteFace())
	require.False(inf.Marked, "the infinite face itself must never be marked")
}
