package engine

import (
	"github.com/gomesh/refine2d/conform"
	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
	"github.com/gomesh/refine2d/refine"
	"github.com/gomesh/refine2d/region"
	"github.com/gomesh/refine2d/trait"
)

// Session is the orchestrator spec section 4.5 describes: a stateful
// object wrapping a triangulation, its conformance engine and its
// refinement engine, exposing the step-by-step API Run's one-shot
// convenience function builds on top of. Host applications that want to
// interleave refinement with their own frame loop (a UI that must stay
// responsive, a test harness that wants to inspect the mesh between
// steps) drive a Session directly instead of calling Run.
type Session struct {
	mesh      *core.Mesh
	conformer *conform.Engine
	refiner   *refine.Engine
	criteria  trait.Criteria

	seeds     []geom.Point
	seedsMark bool

	initialized bool
}

// NewSession wraps mesh with fresh conformance and refinement engines
// judging criteria. A nil criteria defaults to trait.NewMinAngleTraits().
func NewSession(mesh *core.Mesh, criteria trait.Criteria) *Session {
	if criteria == nil {
		criteria = trait.NewMinAngleTraits()
	}
	return &Session{
		mesh:      mesh,
		conformer: conform.New(mesh),
		refiner:   refine.New(mesh, criteria),
		criteria:  criteria,
	}
}

// Mesh returns the triangulation this Session is refining.
func (s *Session) Mesh() *core.Mesh { return s.mesh }

// SetSeeds replaces the seed set: mark is the value propagate_marks should
// assign to every component reachable from a seed without crossing a
// constraint. If doItNow is true, mark_facets runs immediately; otherwise
// the new seeds take effect on the next Init/Refine/RefineStep call that
// performs one.
func (s *Session) SetSeeds(seeds []geom.Point, mark bool, doItNow bool) {
	s.seeds = append([]geom.Point(nil), seeds...)
	s.seedsMark = mark
	if doItNow {
		s.markFacets()
	}
}

// ClearSeeds empties the seed set and resets seeds_mark to false, per
// spec section 4.5.
func (s *Session) ClearSeeds() {
	s.seeds = nil
	s.seedsMark = false
}

// Seeds returns a copy of the current seed set.
func (s *Session) Seeds() []geom.Point {
	return append([]geom.Point(nil), s.seeds...)
}

func (s *Session) markFacets() {
	region.Mark(s.mesh)
	if len(s.seeds) > 0 {
		region.MarkSeeds(s.mesh, s.seeds, s.seedsMark)
	}
}

// Init clears the BadFaceQueue, marks which faces lie inside the domain,
// and fills the queue with every marked face the criteria already flags
// bad. It is idempotent: a second call before any state change is a
// no-op. Refine and RefineStep both call it automatically if the Session
// has never been initialized, matching spec section 4.5's "must be called
// before any refinement if the user mutated state... Idempotent."
func (s *Session) Init() {
	if s.initialized {
		return
	}
	s.markFacets()
	s.refiner.SetBadFaces(nil)
	s.refiner.FillQueue()
	s.initialized = true
}

// CalculateBadFaces re-scans every finite face and replaces the
// BadFaceQueue with the marked ones criteria flags bad, equivalent to
// fill_facet_map. Call this after SetCriteria, since that call
// deliberately does not rescan on its own.
func (s *Session) CalculateBadFaces() {
	s.refiner.SetBadFaces(nil)
	s.refiner.FillQueue()
}

// SetBadFaces replaces the BadFaceQueue's contents with exactly the given
// faces, each inserted at its current squared-minimum-sine priority.
func (s *Session) SetBadFaces(faces []core.FaceID) {
	s.refiner.SetBadFaces(faces)
}

// SetCriteria replaces the quality criteria refinement judges triangles
// by. Per spec section 4.5 it deliberately does not rescan the
// BadFaceQueue; call CalculateBadFaces or SetBadFaces next.
func (s *Session) SetCriteria(c trait.Criteria) {
	s.criteria = c
	s.refiner = refine.New(s.mesh, c)
}

// Clear resets the Session to an empty triangulation with no seeds and no
// queued faces, per spec section 4.5's clear().
func (s *Session) Clear() {
	s.mesh = core.NewMesh()
	s.conformer = conform.New(s.mesh)
	s.refiner = refine.New(s.mesh, s.criteria)
	s.seeds = nil
	s.seedsMark = false
	s.initialized = false
}

// Refine drains both the conformance engine's encroachment backlog and the
// BadFaceQueue until both are simultaneously empty, per spec section
// 4.4's loop. It calls Init first if the Session has not been initialized.
func (s *Session) Refine() {
	if !s.initialized {
		s.Init()
	}
	for !s.conformer.IsConformed() || s.refiner.Pending() > 0 {
		if s.conformer.ConformAll() > 0 {
			// A conform split can leave newly-bad marked faces behind that
			// the refiner has never tested; rescanning here is what keeps
			// invariant I2 (every marked bad face is queued) holding at
			// this loop's quiescent point, the same role FillQueue plays
			// after init.
			s.refiner.FillQueue()
		}
		if s.refiner.Pending() > 0 {
			s.refiner.RefineStep()
		}
	}
}

// RefineStep performs one unit of work and reports whether it did
// anything, per spec section 4.4.7: ask the conformance engine for one
// step first; if it had nothing to do and the BadFaceQueue is non-empty,
// process one face instead; if both are idle, return false.
func (s *Session) RefineStep() bool {
	if !s.initialized {
		s.Init()
	}
	if s.conformer.ConformStep() {
		s.refiner.FillQueue()
		return true
	}
	if s.refiner.Pending() > 0 {
		s.refiner.RefineStep()
		return true
	}
	return false
}

// Pending reports how many faces are currently queued for repair.
func (s *Session) Pending() int { return s.refiner.Pending() }

// IsBad reports whether face f currently violates the configured quality
// criteria.
func (s *Session) IsBad(f core.FaceID) bool {
	face, ok := s.mesh.Face(f)
	if !ok {
		return false
	}
	a, b, c := s.faceVertices(face)
	bad, _ := s.criteria.IsBad(a, b, c)
	return bad
}

// SquaredMinimumSine returns the squared-minimum-sine quality measure of
// face f's three vertices.
func (s *Session) SquaredMinimumSine(f core.FaceID) float64 {
	face, ok := s.mesh.Face(f)
	if !ok {
		return 0
	}
	a, b, c := s.faceVertices(face)
	return geom.SquaredMinimumSine(a, b, c)
}

// SquaredMinimumSineOf returns the squared-minimum-sine quality measure of
// the triangle (va, vb, vc), whether or not those three vertices currently
// form a live face.
func (s *Session) SquaredMinimumSineOf(va, vb, vc core.VertexID) float64 {
	a, _ := s.mesh.Vertex(va)
	b, _ := s.mesh.Vertex(vb)
	c, _ := s.mesh.Vertex(vc)
	return geom.SquaredMinimumSine(a.P, b.P, c.P)
}

func (s *Session) faceVertices(face core.Face) (a, b, c geom.Point) {
	av, _ := s.mesh.Vertex(face.V[0])
	bv, _ := s.mesh.Vertex(face.V[1])
	cv, _ := s.mesh.Vertex(face.V[2])
	return av.P, bv.P, cv.P
}

// SegmentSplits is how many constrained-edge splits this Session has
// performed so far, across both the conformance engine's steps and
// refinement's own segment splits.
func (s *Session) SegmentSplits() int {
	return s.conformer.Splits + s.refiner.SegmentSplits
}

// PointsInserted is how many Steiner points Refine/RefineStep has added
// via circumcenter insertion (refineFace's "split the face" path).
func (s *Session) PointsInserted() int { return s.refiner.Inserted }

// AcceptedBadFaces is how many triangles Refine/RefineStep has
// permanently left below the quality bound because their badness was
// rooted in an already-reduced small-angle cluster.
func (s *Session) AcceptedBadFaces() int { return s.refiner.Accepted }
