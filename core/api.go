// File: api.go
// Role: the Triangulation capability every refinement package consumes.
// Policy:
//   - This file is pure contract: no algorithms, no state.
//   - Mesh (mesh.go, insert.go, queries.go) is the in-package implementation;
//     any other CDT backend that satisfies Triangulation plugs in unchanged.

package core

import "github.com/gomesh/refine2d/geom"

// Triangulation is the capability set section 6 of the spec requires from
// the constrained Delaunay triangulation collaborator. The refinement
// engine (packages region, cluster, conform, refine, engine) is written
// entirely against this interface; Mesh is simply the implementation this
// repository ships so the engine has something concrete to run against.
type Triangulation interface {
	// Locate returns the face containing p, or ok=false if no face could be
	// found. The face returned may be infinite: a p outside every finite
	// face lands in a face incident to a super vertex.
	Locate(p geom.Point) (FaceID, bool)

	// AllFaces returns every face, finite and infinite, in an order stable
	// for a fixed triangulation state.
	AllFaces() []FaceID

	// FiniteFaces returns every face not incident to a super vertex.
	FiniteFaces() []FaceID

	// InfiniteFace returns one canonical infinite face.
	InfiniteFace() FaceID

	// IsInfinite reports whether f is incident to a super vertex.
	IsInfinite(f FaceID) bool

	// IncidentFaces returns the faces circulating v, in one consistent
	// rotational order (counter-clockwise), starting at an unspecified
	// but deterministic face.
	IncidentFaces(v VertexID) []FaceID

	// IncidentFacesFrom is IncidentFaces but starts the circulation at the
	// face containing hint, if hint is itself incident to v.
	IncidentFacesFrom(v VertexID, hint FaceID) []FaceID

	// IsFace reports whether some currently-live face has exactly vertices
	// {va, vb, vc}, and if so returns its handle.
	IsFace(va, vb, vc VertexID) (FaceID, bool)

	// IsEdge reports whether some currently-live face has an edge whose
	// endpoints are {va, vb}, and if so returns that face and the index of
	// the edge within it (oriented so V[cw(i)]==va, V[ccw(i)]==vb).
	IsEdge(va, vb VertexID) (FaceID, int, bool)

	// Face returns a snapshot of face f's data, or ok=false if f no longer
	// exists.
	Face(f FaceID) (Face, bool)

	// Vertex returns a snapshot of vertex v's data, or ok=false if v does
	// not exist.
	Vertex(v VertexID) (Vertex, bool)

	// SetMarked sets the Marked bit of face f.
	SetMarked(f FaceID, marked bool)

	// SetConstraint sets the Constrained bit of the edge opposite V[i] in
	// face f, and mirrors it onto the matching edge of f's neighbor across
	// that edge (constraint bits are a property of the edge, not the face).
	SetConstraint(f FaceID, i int, constrained bool)

	// MirrorIndex returns the index j such that, in f's neighbor across
	// edge i, the shared edge is edge j (i.e. N(f,i).N[j] == f).
	MirrorIndex(f FaceID, i int) int

	// GetConflicts returns the faces whose circumscribing circle strictly
	// contains p (the "conflict zone") and the ordered boundary edges of
	// that zone, searching outward from hint. Conflict-zone discovery does
	// not cross a constrained edge: a constrained edge is always a zone
	// boundary, regardless of whether p's circle contains the far face.
	GetConflicts(p geom.Point, hint FaceID) (faces []FaceID, boundary []EdgeRef)

	// StarHole destroys every face in faces and replaces the polygonal
	// hole bounded by boundary with a fan of new faces from a freshly
	// created vertex at p to each boundary edge, preserving constraint
	// bits carried by boundary edges. It returns the new vertex.
	StarHole(p geom.Point, boundary []EdgeRef, faces []FaceID) VertexID

	// InsertOnEdge splits the edge (fh, i) at p, preserving whatever
	// constraint bit that edge carried on both resulting sub-edges. It
	// returns the new vertex. The caller is responsible for computing and
	// purging the conflict zone of p beforehand (see refine.Engine's
	// splitSegment, which calls GetConflicts with the edge temporarily
	// unconstrained).
	InsertOnEdge(p geom.Point, fh FaceID, i int) VertexID

	// Circumcenter returns the circumcenter of face f.
	Circumcenter(f FaceID) geom.Point
}
