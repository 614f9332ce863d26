package refine

import (
	"github.com/gomesh/refine2d/cluster"
	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
	"github.com/gomesh/refine2d/queue"
	"github.com/gomesh/refine2d/trait"
)

// Engine drives Ruppert-style refinement of a single triangulation against
// a single quality Criteria. It owns a BadFaceQueue of candidate faces but
// no geometric state: every mutation goes through tri.
type Engine struct {
	tri      core.Triangulation
	criteria trait.Criteria
	bad      *queue.BadFaceQueue

	// Stats, exposed for the engine package's Orchestrator to report.
	Inserted      int
	SegmentSplits int
	Accepted      int
}

// New returns a refinement Engine over tri, judging triangles with
// criteria.
func New(tri core.Triangulation, criteria trait.Criteria) *Engine {
	return &Engine{tri: tri, criteria: criteria, bad: queue.New()}
}

// FillQueue scans every marked (in-domain) face and enqueues the ones
// criteria flags as bad. Call this once after construction and region
// marking, before the first RefineStep.
func (e *Engine) FillQueue() {
	for _, f := range e.tri.FiniteFaces() {
		e.testAndQueue(f)
	}
}

// Pending reports how many faces are currently queued for repair.
func (e *Engine) Pending() int { return e.bad.Len() }

// SetBadFaces implements the orchestrator's set_bad_faces: it discards
// whatever the queue currently holds and replaces it with exactly faces,
// each pushed at its current squared-minimum-sine-derived priority. Unlike
// FillQueue, it does not filter by Marked or by criteria.IsBad — the
// caller is asserting these specific faces are the ones to track.
func (e *Engine) SetBadFaces(faces []core.FaceID) {
	e.bad = queue.New()
	for _, f := range faces {
		face, ok := e.tri.Face(f)
		if !ok {
			continue
		}
		a := mustPoint(e.tri, face.V[0])
		b := mustPoint(e.tri, face.V[1])
		c := mustPoint(e.tri, face.V[2])
		_, priority := e.criteria.IsBad(a, b, c)
		e.bad.Push(queue.FaceID(f), priority)
	}
}

// RefineStep performs one unit of refinement work: it pops the worst
// queued face and repairs it, by segment split or circumcenter insertion.
// It returns false once the queue is empty, meaning refinement is done
// (modulo permanently-accepted cluster triangles, which are popped once
// and then dropped rather than re-enqueued).
func (e *Engine) RefineStep() bool {
	fid, _, ok := e.bad.Pop()
	if !ok {
		return false
	}
	f := core.FaceID(fid)

	face, ok := e.tri.Face(f)
	if !ok {
		// Destroyed by an earlier step's retriangulation; nothing to do.
		return true
	}
	if !face.Marked {
		return true
	}

	a := mustPoint(e.tri, face.V[0])
	b := mustPoint(e.tri, face.V[1])
	c := mustPoint(e.tri, face.V[2])
	bad, _ := e.criteria.IsBad(a, b, c)
	if !bad {
		return true
	}

	e.refineFace(f)
	return true
}

// Run calls RefineStep until it reports no work remains, or maxSteps steps
// have been taken (0 means unbounded). It returns the number of steps
// actually performed.
func (e *Engine) Run(maxSteps int) int {
	steps := 0
	for maxSteps == 0 || steps < maxSteps {
		if !e.RefineStep() {
			break
		}
		steps++
	}
	return steps
}

// vertexPair names a constrained segment by its stable vertex endpoints,
// robust to the face/edge-index handles that earlier splits in the same
// refineFace call may have invalidated (see faceVertices' doc comment).
type vertexPair struct{ va, vb core.VertexID }

// refineFace implements Mesh_2's refine_face. It scans every boundary
// edge of the circumcenter's conflict zone: if none is a constrained edge
// c would encroach, c is inserted ("split the face"); otherwise c
// is withheld and each encroached segment is classified per Shewchuk's
// terminator (§4.4.2) as either needing a conformance split ("keep the
// face bad", re-enqueuing f once every split below has run) or as
// cluster-protected, in which case that edge contributes neither a split
// nor a re-enqueue.
func (e *Engine) refineFace(f core.FaceID) {
	p := e.tri.Circumcenter(f)
	faces, boundary := e.tri.GetConflicts(p, f)

	splitTheFace := true
	keepTheFaceBad := false
	var pending []vertexPair

	for _, eref := range boundary {
		face, ok := e.tri.Face(eref.Face)
		if !ok || !face.Constrained[eref.Index] {
			continue
		}
		va := face.V[cwIdx(eref.Index)]
		vb := face.V[ccwIdx(eref.Index)]
		if !geom.EncroachesSegment(p, mustPoint(e.tri, va), mustPoint(e.tri, vb)) {
			continue
		}
		splitTheFace = false

		ca, aInCluster := cluster.ClusterAt(e.tri, va, vb)
		cb, bInCluster := cluster.ClusterAt(e.tri, vb, va)

		if aInCluster == bInCluster {
			// Case A: both endpoints clustered, or neither.
			pending = append(pending, vertexPair{va, vb})
			keepTheFaceBad = true
			continue
		}

		// Case B: exactly one endpoint is in a cluster; apply the
		// terminator. An unreduced cluster, or one whose minimum
		// insertion radius hasn't shrunk below this face's shortest
		// edge, hasn't yet earned protection, so the split still runs.
		c := cb
		if aInCluster {
			c = ca
		}
		if !c.IsReduced(e.tri) || c.RMin*c.RMin >= e.shortestEdgeSquaredLength(f) {
			pending = append(pending, vertexPair{va, vb})
			keepTheFaceBad = true
		}
		// Otherwise the cluster protects this edge: no split, no
		// re-enqueue on its account.
	}

	if splitTheFace {
		for _, cf := range faces {
			e.bad.Remove(queue.FaceID(cf))
		}
		v := e.tri.StarHole(p, boundary, faces)
		e.Inserted++
		e.requeueIncident(v)
		return
	}

	fa, fb, fc, haveVerts := e.faceVertices(f)
	for _, vp := range pending {
		e.conformSegment(vp.va, vp.vb)
	}

	if !keepTheFaceBad {
		// Every encroachment on this face was cluster-protected: it is
		// permanently abandoned, never split and never re-enqueued.
		e.Accepted++
		return
	}

	// f's own handle may have been invalidated by the conformance splits
	// just performed; re-resolve it by its three vertices (§5's
	// handle-stability discipline) before re-enqueuing.
	if haveVerts {
		if fh, found := e.tri.IsFace(fa, fb, fc); found {
			e.testAndQueue(fh)
		}
	}
}

// faceVertices returns f's three vertices, captured before any mutation
// that might invalidate f's handle.
func (e *Engine) faceVertices(f core.FaceID) (va, vb, vc core.VertexID, ok bool) {
	face, ok := e.tri.Face(f)
	if !ok {
		return 0, 0, 0, false
	}
	return face.V[0], face.V[1], face.V[2], true
}

// shortestEdgeSquaredLength returns the squared length of f's shortest
// edge, the comparison spec §4.4.2's terminator test weighs a cluster's
// minimum insertion radius against.
func (e *Engine) shortestEdgeSquaredLength(f core.FaceID) float64 {
	face, ok := e.tri.Face(f)
	if !ok {
		return 0
	}
	a := mustPoint(e.tri, face.V[0])
	b := mustPoint(e.tri, face.V[1])
	c := mustPoint(e.tri, face.V[2])

	min := geom.SquaredDistance(a, b)
	if d := geom.SquaredDistance(b, c); d < min {
		min = d
	}
	if d := geom.SquaredDistance(c, a); d < min {
		min = d
	}
	return min
}

// conformSegment re-resolves (va, vb) to its current edge and splits it if
// it is still constrained: a single-split counterpart of package conform's
// ConformSegment, with no encroachment re-check and no recursion.
// Re-resolving by vertex pair rather than carrying a face/edge-index
// handle is what keeps this safe to call after an earlier pending split
// in the same refineFace call may have destroyed and recreated the faces
// around (va, vb).
func (e *Engine) conformSegment(va, vb core.VertexID) {
	f, i, ok := e.tri.IsEdge(va, vb)
	if !ok {
		return
	}
	face, ok := e.tri.Face(f)
	if !ok || !face.Constrained[i] {
		return
	}
	e.splitSegment(f, i)
}

// splitSegment implements virtual_insert_in_the_edge: purge the split
// point's conflict zone from the BadFaceQueue before mutating (spec §3's
// lifecycle rule and §4.4.3 step 2, via the two-way removal §4.1 reserves
// this for), insert the segment's midpoint, then requeue every face newly
// incident to the split point.
func (e *Engine) splitSegment(f core.FaceID, i int) {
	face, ok := e.tri.Face(f)
	if !ok {
		return
	}
	va := mustPoint(e.tri, face.V[cwIdx(i)])
	vb := mustPoint(e.tri, face.V[ccwIdx(i)])
	mid := geom.Midpoint(va, vb)

	// Temporarily open the edge so the conflict zone spans both sides,
	// the same trick InsertOnEdge itself performs; this is what lets the
	// purge below see every face InsertOnEdge is about to destroy.
	e.tri.SetConstraint(f, i, false)
	conflictFaces, _ := e.tri.GetConflicts(mid, f)
	e.tri.SetConstraint(f, i, true)
	for _, cf := range conflictFaces {
		e.bad.Remove(queue.FaceID(cf))
	}

	v := e.tri.InsertOnEdge(mid, f, i)
	e.SegmentSplits++
	e.requeueIncident(v)
}

// requeueIncident implements compute_new_bad_faces: test every marked,
// finite face now incident to v and enqueue the ones that are bad.
func (e *Engine) requeueIncident(v core.VertexID) {
	for _, f := range e.tri.IncidentFaces(v) {
		if e.tri.IsInfinite(f) {
			continue
		}
		e.testAndQueue(f)
	}
}

// testAndQueue implements fill_facet_map's per-face test: a marked face is
// queued iff criteria flags it bad. Cluster-protection is not decided
// here — only refineFace, with a specific encroached edge and cluster in
// hand, can tell a genuinely terminator-protected face apart from an
// ordinary bad one (see refineFace's Case B).
func (e *Engine) testAndQueue(f core.FaceID) {
	face, ok := e.tri.Face(f)
	if !ok || !face.Marked {
		return
	}
	a := mustPoint(e.tri, face.V[0])
	b := mustPoint(e.tri, face.V[1])
	c := mustPoint(e.tri, face.V[2])

	bad, priority := e.criteria.IsBad(a, b, c)
	if !bad {
		e.bad.Remove(queue.FaceID(f))
		return
	}
	e.bad.Push(queue.FaceID(f), priority)
}

func mustPoint(tri core.Triangulation, id core.VertexID) geom.Point {
	v, _ := tri.Vertex(id)
	return v.P
}

func cwIdx(i int) int  { return (i + 2) % 3 }
func ccwIdx(i int) int { return (i + 1) % 3 }
