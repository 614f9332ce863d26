package core

import (
	"sync"

	"github.com/gomesh/refine2d/geom"
)

// superScale sets the half-width of the synthetic bounding triangle NewMesh
// seeds the arena with. It must dwarf every coordinate Insert is ever
// asked to insert; refine2d is aimed at PSLGs with coordinates in the
// low thousands, so four orders of magnitude of headroom is ample without
// pushing the float64 predicates in package geom toward their precision
// limit.
const superScale = 1e7

// Mesh is the concrete, in-memory Triangulation this repository ships.
// It stores vertices and faces in monotonic-ID arenas (see doc.go) guarded
// by a single RWMutex: readers (the region/cluster/conform/refine packages)
// take RLock, the handful of mutating methods in insert.go and SetMarked
// take Lock.
type Mesh struct {
	mu sync.RWMutex

	vertices map[VertexID]*Vertex
	faces    map[FaceID]*Face

	nextVertexID VertexID
	nextFaceID   FaceID

	// super holds the three synthetic bounding-triangle corners created by
	// NewMesh. A face is infinite iff it is incident to one of these.
	super [3]VertexID

	// locateHint is the most recently touched face, used to seed the next
	// Locate/GetConflicts walk so repeated nearby insertions stay cheap.
	locateHint FaceID
}

// NewMesh creates an empty triangulation: three super vertices forming one
// large bounding triangle and the single face between them. Every geometric
// query on a fresh Mesh returns that one infinite face until points are
// inserted via Insert or InsertSegment.
func NewMesh() *Mesh {
	m := &Mesh{
		vertices: make(map[VertexID]*Vertex),
		faces:    make(map[FaceID]*Face),
	}

	v0 := m.newVertex(geom.Point{X: -superScale, Y: -superScale}, true)
	v1 := m.newVertex(geom.Point{X: superScale, Y: -superScale}, true)
	v2 := m.newVertex(geom.Point{X: 0, Y: superScale}, true)
	m.super = [3]VertexID{v0, v1, v2}

	root := m.newFace([3]VertexID{v0, v1, v2}, [3]FaceID{noFace, noFace, noFace})
	m.locateHint = root

	return m
}

func (m *Mesh) newVertex(p geom.Point, super bool) VertexID {
	m.nextVertexID++
	id := m.nextVertexID
	m.vertices[id] = &Vertex{ID: id, P: p, super: super}
	return id
}

func (m *Mesh) newFace(v [3]VertexID, n [3]FaceID) FaceID {
	m.nextFaceID++
	id := m.nextFaceID
	m.faces[id] = &Face{ID: id, V: v, N: n}
	return id
}

// isSuper reports whether v is one of the three bootstrap corners.
func (m *Mesh) isSuper(v VertexID) bool {
	return v == m.super[0] || v == m.super[1] || v == m.super[2]
}

// indexOf returns the position of v within f.V, or -1.
func indexOf(f *Face, v VertexID) int {
	for i, w := range f.V {
		if w == v {
			return i
		}
	}
	return -1
}
