package conform

import (
	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
)

// Engine drives encroachment-based segment splitting against a single
// triangulation. It holds no geometric state of its own; all of it lives
// in the Triangulation it was built with.
type Engine struct {
	tri core.Triangulation

	// Splits counts every segment split this Engine has performed, for
	// callers (package engine's Session) that report it as a diagnostic.
	Splits int
}

// New returns a conformance Engine operating on tri.
func New(tri core.Triangulation) *Engine {
	return &Engine{tri: tri}
}

// ConformAll repeatedly scans every constrained segment for encroachment
// and splits each offender at its midpoint, until a full pass finds none
// left. It returns the number of splits performed.
func (e *Engine) ConformAll() int {
	splits := 0
	for e.ConformStep() {
		splits++
	}
	return splits
}

// ConformStep performs one unit of conformance work: find one currently
// encroached constrained segment and split it. It reports whether it found
// one, so a caller driving refinement one step at a time (package engine's
// Session) can tell "conformance is the fixed point" apart from "there was
// work to do."
func (e *Engine) ConformStep() bool {
	seg, ok := e.findEncroached()
	if !ok {
		return false
	}
	e.splitSegment(seg.face, seg.index)
	return true
}

// IsConformed reports whether every constrained segment is currently
// Gabriel: the fixed point ConformAll/ConformStep drive the mesh towards.
func (e *Engine) IsConformed() bool {
	_, ok := e.findEncroached()
	return !ok
}

// ConformSegment restores the Gabriel property of the single segment
// (va, vb) by recursively splitting it (and whichever half remains
// encroached) until no encroachment remains.
func (e *Engine) ConformSegment(va, vb core.VertexID) {
	f, i, ok := e.tri.IsEdge(va, vb)
	if !ok || !e.edgeConstrained(f, i) {
		return
	}
	if !e.encroached(f, i) {
		return
	}
	v := e.splitSegment(f, i)
	e.ConformSegment(va, v)
	e.ConformSegment(v, vb)
}

type segRef struct {
	face  core.FaceID
	index int
}

// findEncroached returns one currently-encroached constrained edge, if any.
func (e *Engine) findEncroached() (segRef, bool) {
	for _, fid := range e.tri.AllFaces() {
		face, ok := e.tri.Face(fid)
		if !ok {
			continue
		}
		for i := 0; i < 3; i++ {
			if face.Constrained[i] && e.encroached(fid, i) {
				return segRef{face: fid, index: i}, true
			}
		}
	}
	return segRef{}, false
}

// edgeConstrained reports whether edge i of face f is currently marked
// constrained.
func (e *Engine) edgeConstrained(f core.FaceID, i int) bool {
	face, ok := e.tri.Face(f)
	return ok && face.Constrained[i]
}

// encroached reports whether any mesh vertex lies in the closed diametral
// disk of edge i of face f.
func (e *Engine) encroached(f core.FaceID, i int) bool {
	face, ok := e.tri.Face(f)
	if !ok {
		return false
	}
	va := mustVertex(e.tri, face.V[cwIdx(i)])
	vb := mustVertex(e.tri, face.V[ccwIdx(i)])

	for v := range e.allVertexIDs() {
		if v == face.V[cwIdx(i)] || v == face.V[ccwIdx(i)] {
			continue
		}
		p := mustVertex(e.tri, v)
		if geom.EncroachesSegment(p, va, vb) {
			return true
		}
	}
	return false
}

func (e *Engine) splitSegment(f core.FaceID, i int) core.VertexID {
	face, ok := e.tri.Face(f)
	if !ok {
		return 0
	}
	va := mustVertex(e.tri, face.V[cwIdx(i)])
	vb := mustVertex(e.tri, face.V[ccwIdx(i)])
	mid := geom.Midpoint(va, vb)

	e.Splits++
	return e.tri.InsertOnEdge(mid, f, i)
}

// allVertexIDs collects every vertex appearing in a finite face; the
// infinite/super vertices can never lie inside a finite diametral disk so
// they are excluded.
func (e *Engine) allVertexIDs() map[core.VertexID]bool {
	out := make(map[core.VertexID]bool)
	for _, fid := range e.tri.FiniteFaces() {
		face, ok := e.tri.Face(fid)
		if !ok {
			continue
		}
		out[face.V[0]] = true
		out[face.V[1]] = true
		out[face.V[2]] = true
	}
	return out
}

func mustVertex(tri core.Triangulation, id core.VertexID) geom.Point {
	v, _ := tri.Vertex(id)
	return v.P
}

// cwIdx/ccwIdx mirror core's unexported cw/ccw edge-index convention: edge
// i connects V[cwIdx(i)] (first) and V[ccwIdx(i)] (second).
func cwIdx(i int) int  { return (i + 2) % 3 }
func ccwIdx(i int) int { return (i + 1) % 3 }
