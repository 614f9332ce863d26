// This file declares VertexID, FaceID, Vertex, Face, EdgeRef and the
// sentinel errors shared by the rest of this package; the Mesh constructor
// is in mesh.go.
//
// Errors:
//
//	ErrEmptyPoints      - engine.Run called with no points.
//	ErrDegenerateInput  - all input points are collinear; no 2D mesh exists.
//	ErrFaceNotFound     - requested FaceID does not exist (has been destroyed or was never valid).
//	ErrVertexNotFound   - requested VertexID does not exist.
//	ErrBadEdgeIndex     - an edge index outside {0,1,2} was supplied.
//	ErrSegmentEndpoints - a PSLG segment referenced an out-of-range point index.
package core

import (
	"errors"

	"github.com/gomesh/refine2d/geom"
)

// Sentinel errors for core mesh operations.
var (
	ErrEmptyPoints      = errors.New("core: no points supplied")
	ErrDegenerateInput  = errors.New("core: input points are collinear")
	ErrFaceNotFound     = errors.New("core: face not found")
	ErrVertexNotFound   = errors.New("core: vertex not found")
	ErrBadEdgeIndex     = errors.New("core: edge index must be in {0,1,2}")
	ErrSegmentEndpoints = errors.New("core: segment endpoint index out of range")
)

// VertexID stably identifies a vertex for the lifetime of the mesh. IDs are
// never reused, even after the vertex they named is destroyed.
type VertexID uint64

// FaceID stably identifies a face for the lifetime of the mesh. IDs are
// never reused, even after the face they named is destroyed by a
// retriangulation. A FaceID value from before a mutation that is not also
// present after it refers to nothing; callers must not carry FaceHandles
// across mutation points (see package core's doc comment on handle
// stability).
type FaceID uint64

// noVertex and noFace are the zero values, reserved to mean "no such
// handle"; valid IDs are always >= 1.
const (
	noVertex VertexID = 0
	noFace   FaceID   = 0
)

// EdgeRef names an edge as (face, index): the edge opposite Face.V[Index],
// i.e. the edge joining Face.V[cw(Index)] and Face.V[ccw(Index)].
type EdgeRef struct {
	Face  FaceID
	Index int
}

// Vertex is a point in the mesh together with its stable identity.
type Vertex struct {
	ID VertexID
	P  geom.Point

	// super marks one of the three synthetic bounding-triangle corners
	// inserted by NewMesh. Faces incident to a super vertex are infinite.
	super bool
}

// Face is a triangle: three vertices in counter-clockwise order, the three
// neighbors across each opposite edge, and the constraint/marking bits this
// package and the refinement engine maintain on it.
type Face struct {
	ID FaceID
	V  [3]VertexID
	N  [3]FaceID

	// Constrained[i] is true iff the edge opposite V[i] is a PSLG segment.
	Constrained [3]bool

	// Marked records whether this face lies inside the domain to be
	// meshed (set by package region, preserved across split_face).
	Marked bool
}

// cw and ccw are the two combinatorial rotations of a triangle's edge
// indices 0/1/2, matching the convention edge i connects V[cw(i)] (first)
// and V[ccw(i)] (second), opposite V[i].
func cw(i int) int  { return (i + 2) % 3 }
func ccw(i int) int { return (i + 1) % 3 }
