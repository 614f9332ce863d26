package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/engine"
	"github.com/gomesh/refine2d/geom"
	"github.com/gomesh/refine2d/trait"
)

// allVertices collects every vertex appearing in a finite face of m.
func allVertices(m *core.Mesh) map[core.VertexID]geom.Point {
	out := make(map[core.VertexID]geom.Point)
	for _, fid := range m.FiniteFaces() {
		face, ok := m.Face(fid)
		if !ok {
			continue
		}
		for _, id := range face.V {
			if _, seen := out[id]; !seen {
				v, _ := m.Vertex(id)
				out[id] = v.P
			}
		}
	}
	return out
}

func unitSquare() engine.PSLG {
	return engine.PSLG{
		Points: []geom.Point{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 10, Y: 10},
			{X: 0, Y: 10},
		},
		Segments: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	}
}

func TestRunOnSquareProducesQualityMesh(t *testing.T) {
	require := require.New(t)

	res, err := engine.Run(unitSquare(), engine.WithMinAngle(20))
	require.NoError(err)
	require.NotNil(res.Mesh)

	bound := trait.NewMinAngleTraits(trait.WithMinAngle(20))
	vertices := allVertices(res.Mesh)

	markedFaces := 0
	for _, fid := range res.Mesh.FiniteFaces() {
		face, _ := res.Mesh.Face(fid)
		if !face.Marked {
			continue
		}
		markedFaces++

		a, _ := res.Mesh.Vertex(face.V[0])
		b, _ := res.Mesh.Vertex(face.V[1])
		c, _ := res.Mesh.Vertex(face.V[2])

		// No marked face should still be bad: Run is done only once the
		// queue it fed from is empty, so recomputing badness here is an
		// equivalent, externally-observable check on that internal state.
		bad, _ := bound.IsBad(a.P, b.P, c.P)
		require.Falsef(bad, "marked face %d below the 20 degree bound survived Run", fid)

		for i := 0; i < 3; i++ {
			if !face.Constrained[i] {
				continue
			}
			va, _ := res.Mesh.Vertex(face.V[(i+2)%3])
			vb, _ := res.Mesh.Vertex(face.V[(i+1)%3])
			for id, p := range vertices {
				if id == face.V[(i+2)%3] || id == face.V[(i+1)%3] {
					continue
				}
				require.Falsef(geom.EncroachesSegment(p, va.P, vb.P),
					"constrained edge on face %d is encroached by vertex %d", fid, id)
			}
		}
	}
	require.Positive(markedFaces, "unit square should triangulate to at least one in-domain face")
}

func TestRunRejectsEmptyPoints(t *testing.T) {
	_, err := engine.Run(engine.PSLG{})
	require.ErrorIs(t, err, core.ErrEmptyPoints)
}

func TestRunRejectsDegenerateInput(t *testing.T) {
	pslg := engine.PSLG{
		Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	}
	_, err := engine.Run(pslg)
	require.ErrorIs(t, err, core.ErrDegenerateInput)
}

func TestRunRejectsBadSegmentIndex(t *testing.T) {
	pslg := unitSquare()
	pslg.Segments = append(pslg.Segments, [2]int{0, 99})

	_, err := engine.Run(pslg)
	require.ErrorIs(t, err, core.ErrSegmentEndpoints)
}

func TestRunWithSeedsMarksHole(t *testing.T) {
	require := require.New(t)

	// An outer square with an inner square hole, both boundaries
	// constrained; the seed marks the ring between them as in-domain.
	pslg := engine.PSLG{
		Points: []geom.Point{
			{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20},
			{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15},
		},
		Segments: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
		},
	}

	res, err := engine.Run(pslg, engine.WithSeeds(0))
	require.NoError(err)
	require.NotNil(res.Mesh)

	ringFace, ok := res.Mesh.Locate(geom.Point{X: 2, Y: 2})
	require.True(ok, "point in the ring between the squares should land in some face")
	ring, ok := res.Mesh.Face(ringFace)
	require.True(ok)
	require.True(ring.Marked, "ring between outer and inner square must be marked in-domain")

	holeFace, ok := res.Mesh.Locate(geom.Point{X: 10, Y: 10})
	require.True(ok, "point inside the inner square hole should land in some face")
	hole, ok := res.Mesh.Face(holeFace)
	require.True(ok)
	require.False(hole.Marked, "inner square hole must stay unmarked")
}
