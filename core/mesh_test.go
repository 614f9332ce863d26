package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
)

type MeshSuite struct {
	suite.Suite
	m *core.Mesh
}

func (s *MeshSuite) SetupTest() {
	s.m = core.NewMesh()
}

func (s *MeshSuite) TestFreshMeshIsOneInfiniteFace() {
	require := s.Require()

	faces := s.m.AllFaces()
	require.Len(faces, 1, "a fresh mesh has exactly the bootstrap triangle")
	require.True(s.m.IsInfinite(faces[0]), "the bootstrap triangle is infinite by construction")
	require.Empty(s.m.FiniteFaces(), "no finite faces until a point is inserted")
}

func (s *MeshSuite) TestInsertGrowsFiniteFaces() {
	require := s.Require()

	s.m.Insert(geom.Point{X: 0, Y: 0})
	require.Len(s.m.FiniteFaces(), 0, "a single interior point still touches only the super triangle")

	s.m.Insert(geom.Point{X: 10, Y: 0})
	s.m.Insert(geom.Point{X: 0, Y: 10})
	require.NotEmpty(s.m.FiniteFaces(), "three points with none of them super-adjacent yield at least one finite face")
}

func (s *MeshSuite) TestLocateFindsInsertedPoint() {
	require := s.Require()

	s.m.Insert(geom.Point{X: 0, Y: 0})
	s.m.Insert(geom.Point{X: 10, Y: 0})
	s.m.Insert(geom.Point{X: 0, Y: 10})

	f, ok := s.m.Locate(geom.Point{X: 1, Y: 1})
	require.True(ok)
	require.NotEqual(core.FaceID(0), f)
}

func (s *MeshSuite) TestInsertSegmentConstrainsDirectEdge() {
	require := s.Require()

	va := s.m.Insert(geom.Point{X: 0, Y: 0})
	vb := s.m.Insert(geom.Point{X: 10, Y: 0})
	s.m.Insert(geom.Point{X: 0, Y: 10})

	s.m.InsertSegment(va, vb)

	f, i, ok := s.m.IsEdge(va, vb)
	require.True(ok, "the two endpoints must still share an edge")
	face, ok := s.m.Face(f)
	require.True(ok)
	require.True(face.Constrained[i], "InsertSegment must mark the shared edge constrained")
}

func (s *MeshSuite) TestSetConstraintMirrorsAcrossNeighbor() {
	require := s.Require()

	va := s.m.Insert(geom.Point{X: 0, Y: 0})
	vb := s.m.Insert(geom.Point{X: 10, Y: 0})
	s.m.Insert(geom.Point{X: 5, Y: 10})
	s.m.Insert(geom.Point{X: 5, Y: -10})

	f, i, ok := s.m.IsEdge(va, vb)
	require.True(ok)

	j := s.m.MirrorIndex(f, i)
	require.GreaterOrEqual(j, 0)

	s.m.SetConstraint(f, i, true)
	face, _ := s.m.Face(f)
	require.True(face.Constrained[i])

	nbFace, _ := s.m.Face(face.N[i])
	require.True(nbFace.Constrained[j], "the neighbor's mirrored edge must also be constrained")
}

func TestMeshSuite(t *testing.T) {
	suite.Run(t, new(MeshSuite))
}

func TestCircumcenterMatchesGeom(t *testing.T) {
	require := require.New(t)

	m := core.NewMesh()
	a := m.Insert(geom.Point{X: 0, Y: 0})
	b := m.Insert(geom.Point{X: 2, Y: 0})
	c := m.Insert(geom.Point{X: 0, Y: 2})

	f, ok := m.IsFace(a, b, c)
	require.True(ok)

	center := m.Circumcenter(f)
	require.InDelta(1, center.X, 1e-9)
	require.InDelta(1, center.Y, 1e-9)
}
