// This file holds the read-only Mesh methods (the accessors and
// circulation queries that region, cluster, conform and refine drive the
// refinement loop with) and SetMarked, the one mutator kept beside them.

package core

import "github.com/gomesh/refine2d/geom"

// AllFaces implements Triangulation.AllFaces.
func (m *Mesh) AllFaces() []FaceID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]FaceID, 0, len(m.faces))
	for id := range m.faces {
		out = append(out, id)
	}
	return out
}

// FiniteFaces implements Triangulation.FiniteFaces.
func (m *Mesh) FiniteFaces() []FaceID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]FaceID, 0, len(m.faces))
	for id, f := range m.faces {
		if !m.faceIsInfinite(f) {
			out = append(out, id)
		}
	}
	return out
}

// InfiniteFace implements Triangulation.InfiniteFace.
func (m *Mesh) InfiniteFace() FaceID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for id, f := range m.faces {
		if m.faceIsInfinite(f) {
			return id
		}
	}
	return noFace
}

// IsInfinite implements Triangulation.IsInfinite.
func (m *Mesh) IsInfinite(f FaceID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	face := m.faces[f]
	if face == nil {
		return false
	}
	return m.faceIsInfinite(face)
}

func (m *Mesh) faceIsInfinite(f *Face) bool {
	return m.isSuper(f.V[0]) || m.isSuper(f.V[1]) || m.isSuper(f.V[2])
}

// IncidentFaces implements Triangulation.IncidentFaces.
func (m *Mesh) IncidentFaces(v VertexID) []FaceID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.incidentFaces(v, noFace)
}

// IncidentFacesFrom implements Triangulation.IncidentFacesFrom.
func (m *Mesh) IncidentFacesFrom(v VertexID, hint FaceID) []FaceID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.incidentFaces(v, hint)
}

func (m *Mesh) incidentFaces(v VertexID, hint FaceID) []FaceID {
	start := hint
	if start == noFace || m.faces[start] == nil || indexOf(m.faces[start], v) < 0 {
		start = noFace
		for id, f := range m.faces {
			if indexOf(f, v) >= 0 {
				start = id
				break
			}
		}
	}
	if start == noFace {
		return nil
	}

	var out []FaceID
	cur := start
	for {
		out = append(out, cur)
		f := m.faces[cur]
		i := indexOf(f, v)
		// Rotate to the next face sharing v by crossing the edge opposite
		// V[ccw(i)], i.e. the edge (v, V[cw(i)]).
		next := f.N[ccw(i)]
		if next == noFace || next == start {
			break
		}
		cur = next
	}
	return out
}

// IsFace implements Triangulation.IsFace.
func (m *Mesh) IsFace(va, vb, vc VertexID) (FaceID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	want := map[VertexID]bool{va: true, vb: true, vc: true}
	for id, f := range m.faces {
		if want[f.V[0]] && want[f.V[1]] && want[f.V[2]] {
			return id, true
		}
	}
	return noFace, false
}

// IsEdge implements Triangulation.IsEdge.
func (m *Mesh) IsEdge(va, vb VertexID) (FaceID, int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for id, f := range m.faces {
		for i := 0; i < 3; i++ {
			if f.V[cw(i)] == va && f.V[ccw(i)] == vb {
				return id, i, true
			}
		}
	}
	return noFace, 0, false
}

// Face implements Triangulation.Face.
func (m *Mesh) Face(f FaceID) (Face, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	face := m.faces[f]
	if face == nil {
		return Face{}, false
	}
	return *face, true
}

// Vertex implements Triangulation.Vertex.
func (m *Mesh) Vertex(v VertexID) (Vertex, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	vertex := m.vertices[v]
	if vertex == nil {
		return Vertex{}, false
	}
	return *vertex, true
}

// SetMarked implements Triangulation.SetMarked.
func (m *Mesh) SetMarked(f FaceID, marked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face := m.faces[f]; face != nil {
		face.Marked = marked
	}
}

// Circumcenter implements Triangulation.Circumcenter.
func (m *Mesh) Circumcenter(f FaceID) geom.Point {
	m.mu.RLock()
	defer m.mu.RUnlock()

	face := m.faces[f]
	if face == nil {
		return geom.Point{}
	}
	a := m.vertices[face.V[0]].P
	b := m.vertices[face.V[1]].P
	c := m.vertices[face.V[2]].P
	return geom.Circumcenter(a, b, c)
}

var _ Triangulation = (*Mesh)(nil)
