// This file holds point location, conflict-zone discovery and every Mesh
// method that mutates the arena except SetMarked: the star_hole
// retriangulation primitive, edge splitting, constraint bits, and the two
// insertion entry points engine.Run uses to turn a PSLG into a constrained
// Delaunay triangulation.

package core

import (
	"github.com/gomesh/refine2d/geom"
)

// Locate walks the triangle adjacency from the mesh's last-touched face to
// the face containing p. It never fails for a p inside the bounding
// triangle NewMesh seeds the arena with, which Insert's callers are
// expected to respect.
func (m *Mesh) Locate(p geom.Point) (FaceID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.locate(p, m.locateHint)
}

func (m *Mesh) locate(p geom.Point, hint FaceID) (FaceID, bool) {
	cur := hint
	if cur == noFace || m.faces[cur] == nil {
		for id := range m.faces {
			cur = id
			break
		}
	}
	if cur == noFace {
		return noFace, false
	}

	// A planar walk through a triangulation with n faces visits each face
	// at most once barring numerical ties; this cap just guards against a
	// cycle introduced by a degenerate (collinear) configuration.
	for step, limit := 0, len(m.faces)+8; step < limit; step++ {
		f := m.faces[cur]
		moved := false
		for i := 0; i < 3; i++ {
			a := m.vertices[f.V[cw(i)]].P
			b := m.vertices[f.V[ccw(i)]].P
			if geom.OrientationOf(a, b, p) == geom.CounterClockwise && f.N[i] != noFace {
				cur = f.N[i]
				moved = true
				break
			}
		}
		if !moved {
			return cur, true
		}
	}
	return cur, true
}

// GetConflicts implements Triangulation.GetConflicts: a breadth-first
// expansion of the Bowyer-Watson cavity around p, seeded at hint (or at a
// fresh Locate(p) if hint doesn't contain p), that never crosses a
// constrained edge.
func (m *Mesh) GetConflicts(p geom.Point, hint FaceID) ([]FaceID, []EdgeRef) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.getConflicts(p, hint)
}

func (m *Mesh) getConflicts(p geom.Point, hint FaceID) ([]FaceID, []EdgeRef) {
	seed, ok := m.locate(p, hint)
	if !ok {
		return nil, nil
	}

	inZone := map[FaceID]bool{seed: true}
	queue := []FaceID{seed}
	var boundary []EdgeRef

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		f := m.faces[cur]

		for i := 0; i < 3; i++ {
			nb := f.N[i]
			if f.Constrained[i] || nb == noFace {
				boundary = append(boundary, EdgeRef{Face: cur, Index: i})
				continue
			}
			if inZone[nb] {
				continue
			}
			nf := m.faces[nb]
			if m.inCircumcircle(nf, p) {
				inZone[nb] = true
				queue = append(queue, nb)
				continue
			}
			boundary = append(boundary, EdgeRef{Face: cur, Index: i})
		}
	}

	faces := make([]FaceID, 0, len(inZone))
	for id := range inZone {
		faces = append(faces, id)
	}
	return faces, m.orderBoundary(boundary)
}

func (m *Mesh) inCircumcircle(f *Face, p geom.Point) bool {
	a := m.vertices[f.V[0]].P
	b := m.vertices[f.V[1]].P
	c := m.vertices[f.V[2]].P
	return geom.InCircumcircle(a, b, c, p)
}

// orderBoundary chains a set of (face,index) edges sharing no face into a
// single closed polygon starting at an arbitrary edge, by following
// cw-vertex -> ccw-vertex adjacency. The conflict zone is always simply
// connected, so this chain always closes.
func (m *Mesh) orderBoundary(edges []EdgeRef) []EdgeRef {
	if len(edges) <= 1 {
		return edges
	}
	byStart := make(map[VertexID]EdgeRef, len(edges))
	for _, e := range edges {
		f := m.faces[e.Face]
		byStart[f.V[cw(e.Index)]] = e
	}

	first := edges[0]
	ordered := make([]EdgeRef, 0, len(edges))
	cur := first
	for {
		ordered = append(ordered, cur)
		f := m.faces[cur.Face]
		next, ok := byStart[f.V[ccw(cur.Index)]]
		if !ok || len(ordered) == len(edges) {
			break
		}
		cur = next
	}
	return ordered
}

// StarHole implements Triangulation.StarHole.
func (m *Mesh) StarHole(p geom.Point, boundary []EdgeRef, faces []FaceID) VertexID {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.starHole(p, boundary, faces)
}

func (m *Mesh) starHole(p geom.Point, boundary []EdgeRef, faces []FaceID) VertexID {
	type edgeInfo struct {
		va, vb      VertexID
		constrained bool
		outFace     FaceID
		outIndex    int
		marked      bool
	}

	infos := make([]edgeInfo, len(boundary))
	for k, e := range boundary {
		f := m.faces[e.Face]
		va := f.V[cw(e.Index)]
		vb := f.V[ccw(e.Index)]
		out := f.N[e.Index]
		outIdx := -1
		if out != noFace {
			of := m.faces[out]
			for j, nb := range of.N {
				if nb == e.Face {
					outIdx = j
					break
				}
			}
		}
		infos[k] = edgeInfo{va: va, vb: vb, constrained: f.Constrained[e.Index], outFace: out, outIndex: outIdx, marked: f.Marked}
	}

	for _, fid := range faces {
		delete(m.faces, fid)
	}

	v := m.newVertex(p, false)
	newFaces := make([]FaceID, len(infos))
	for k, info := range infos {
		id := m.newFace([3]VertexID{info.vb, info.va, v}, [3]FaceID{noFace, noFace, info.outFace})
		nf := m.faces[id]
		nf.Constrained[2] = info.constrained
		nf.Marked = info.marked
		newFaces[k] = id

		if info.outFace != noFace && info.outIndex >= 0 {
			m.faces[info.outFace].N[info.outIndex] = id
		}
	}
	n := len(newFaces)
	for k := 0; k < n; k++ {
		cur := m.faces[newFaces[k]]
		next := m.faces[newFaces[(k+1)%n]]
		cur.N[1] = next.ID
		next.N[0] = cur.ID
	}

	if n > 0 {
		m.locateHint = newFaces[0]
	}
	return v
}

// MirrorIndex implements Triangulation.MirrorIndex.
func (m *Mesh) MirrorIndex(f FaceID, i int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	face := m.faces[f]
	if face == nil || i < 0 || i > 2 {
		return -1
	}
	nb := m.faces[face.N[i]]
	if nb == nil {
		return -1
	}
	for j, id := range nb.N {
		if id == f {
			return j
		}
	}
	return -1
}

// SetConstraint implements Triangulation.SetConstraint.
func (m *Mesh) SetConstraint(f FaceID, i int, constrained bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.faces[f]
	if face == nil || i < 0 || i > 2 {
		return
	}
	face.Constrained[i] = constrained
	if nb := m.faces[face.N[i]]; nb != nil {
		for j, id := range nb.N {
			if id == f {
				nb.Constrained[j] = constrained
			}
		}
	}
}

// Insert performs a single Bowyer-Watson point insertion of p and returns
// its new vertex. It is engine.Run's primitive for seeding a PSLG's points.
func (m *Mesh) Insert(p geom.Point) VertexID {
	m.mu.Lock()
	defer m.mu.Unlock()

	faces, boundary := m.getConflicts(p, m.locateHint)
	return m.starHole(p, boundary, faces)
}

// InsertOnEdge implements Triangulation.InsertOnEdge: it splits edge (fh, i)
// at p, re-applying that edge's constraint bit to the two diagonals of the
// resulting star that replace it.
func (m *Mesh) InsertOnEdge(p geom.Point, fh FaceID, i int) VertexID {
	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.faces[fh]
	if face == nil || i < 0 || i > 2 {
		return noVertex
	}
	va, vb := face.V[cw(i)], face.V[ccw(i)]
	wasConstrained := face.Constrained[i]

	// Temporarily open the edge so the conflict zone can span both
	// triangles straddling it; GetConflicts treats a constrained edge as
	// an impassable wall.
	face.Constrained[i] = false
	if nb := m.faces[face.N[i]]; nb != nil {
		for j, id := range nb.N {
			if id == fh {
				nb.Constrained[j] = false
			}
		}
	}

	faces, boundary := m.getConflicts(p, fh)
	v := m.starHole(p, boundary, faces)

	if wasConstrained {
		m.restoreSplitConstraint(v, va, vb)
	}
	return v
}

// restoreSplitConstraint marks the two new diagonals (endpoint-v) constrained
// on both incident faces, for each of endpoint in {va, vb}.
func (m *Mesh) restoreSplitConstraint(v, va, vb VertexID) {
	for _, f := range m.faces {
		idx := indexOf(f, v)
		if idx < 0 {
			continue
		}
		for edge := 0; edge < 3; edge++ {
			if edge == idx {
				continue
			}
			other := f.V[edge]
			if other != va && other != vb {
				continue
			}
			// The edge opposite the third vertex joins v and other.
			opp := 3 - idx - edge
			f.Constrained[opp] = true
			if nb := m.faces[f.N[opp]]; nb != nil {
				for j, id := range nb.N {
					if id == f.ID {
						nb.Constrained[j] = true
					}
				}
			}
		}
	}
}

// InsertSegment ensures the PSLG segment (va, vb) is present in the
// triangulation and constrained, recovering it by recursive splitting when
// no direct edge yet joins the two endpoints. Each split
// introduces a genuine Steiner point at the intersection of the segment
// with whichever edge currently crosses it, which the conformance engine
// will visit again like any other inserted vertex once refinement begins.
func (m *Mesh) InsertSegment(va, vb VertexID) {
	m.mu.Lock()
	a, aok := m.vertices[va]
	b, bok := m.vertices[vb]
	m.mu.Unlock()
	if !aok || !bok {
		return
	}

	if f, i, ok := m.IsEdge(va, vb); ok {
		m.SetConstraint(f, i, true)
		return
	}

	crossF, crossI, mid, ok := m.findCrossing(a.P, b.P, va)
	if !ok {
		// No crossing edge found (can happen on a degenerate/duplicate
		// input); fall back to a direct constraint so the caller's segment
		// list doesn't silently vanish.
		if f, i, ok := m.IsEdge(va, vb); ok {
			m.SetConstraint(f, i, true)
		}
		return
	}

	mv := m.InsertOnEdge(mid, crossF, crossI)
	m.InsertSegment(va, mv)
	m.InsertSegment(mv, vb)
}

// findCrossing looks at the faces incident to from and returns the edge
// opposite from that the open segment a->b crosses (the first edge the
// segment meets on its way out of from), together with the point where it
// crosses. That edge may itself be constrained.
func (m *Mesh) findCrossing(a, b geom.Point, from VertexID) (FaceID, int, geom.Point, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, fid := range m.incidentFaces(from, noFace) {
		f := m.faces[fid]
		for i := 0; i < 3; i++ {
			va, vb := f.V[cw(i)], f.V[ccw(i)]
			if va == from || vb == from {
				continue
			}
			pa, pb := m.vertices[va].P, m.vertices[vb].P
			if p, ok := segmentIntersection(a, b, pa, pb); ok {
				return fid, i, p, true
			}
		}
	}
	return noFace, 0, geom.Point{}, false
}

// segmentIntersection returns the intersection of open segments p1p2 and
// p3p4, if the two properly cross.
func segmentIntersection(p1, p2, p3, p4 geom.Point) (geom.Point, bool) {
	d1 := geom.OrientationOf(p3, p4, p1)
	d2 := geom.OrientationOf(p3, p4, p2)
	d3 := geom.OrientationOf(p1, p2, p3)
	d4 := geom.OrientationOf(p1, p2, p4)
	if d1 == d2 || d3 == d4 {
		return geom.Point{}, false
	}

	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y
	x3, y3, x4, y4 := p3.X, p3.Y, p4.X, p4.Y
	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return geom.Point{}, false
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	return geom.Point{X: x1 + t*(x2-x1), Y: y1 + t*(y2-y1)}, true
}
