package cluster

import (
	"math"
	"sort"

	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
)

// clusterAngleThreshold is Shewchuk's bound: two constrained segments
// sharing an endpoint with an angle strictly under this can never both be
// made Gabriel by splitting alone.
const clusterAngleThreshold = 60 * math.Pi / 180

// reducedTolerance is the relative slack allowed between a cluster's
// shortest and longest incident segment before it is still considered
// unreduced (worth another split).
const reducedTolerance = 1e-6

// Cluster is a maximal run of constrained segments incident to Apex whose
// consecutive angular gaps are all under the 60 degree threshold.
type Cluster struct {
	Apex     core.VertexID
	Segments []core.VertexID
	RMin     float64
}

// IsReduced reports whether every segment in the cluster already has
// (within floating-point slack) the cluster's minimum length, meaning the
// cluster cannot be shrunk further by splitting its longer members: any
// triangle whose badness stems from this cluster must be accepted as
// permanently bad, per the terminator criterion.
func (c Cluster) IsReduced(tri core.Triangulation) bool {
	apex, ok := tri.Vertex(c.Apex)
	if !ok {
		return false
	}
	for _, s := range c.Segments {
		sv, ok := tri.Vertex(s)
		if !ok {
			continue
		}
		length := math.Sqrt(geom.SquaredDistance(apex.P, sv.P))
		if length > c.RMin*(1+reducedTolerance) {
			return false
		}
	}
	return true
}

// ClusterAt implements the get_cluster(va, vb) contract: it reports the
// cluster at apex that the segment (apex, other) belongs to, if any. The
// refinement engine calls this once per encroached boundary edge, with
// apex/other and other/apex, to classify which of Shewchuk's terminator
// cases applies.
func ClusterAt(tri core.Triangulation, apex, other core.VertexID) (Cluster, bool) {
	for _, cl := range Analyze(tri, apex) {
		for _, s := range cl.Segments {
			if s == other {
				return cl, true
			}
		}
	}
	return Cluster{}, false
}

// Analyze finds every small-angle cluster of constrained segments incident
// to v. It returns an empty slice if v has fewer than two incident
// constrained segments, or if none of its consecutive angular gaps are
// under the 60 degree threshold.
func Analyze(tri core.Triangulation, v core.VertexID) []Cluster {
	apex, ok := tri.Vertex(v)
	if !ok {
		return nil
	}

	others := incidentSegmentEndpoints(tri, v)
	if len(others) < 2 {
		return nil
	}

	type polar struct {
		id    core.VertexID
		angle float64
		len   float64
	}
	pts := make([]polar, len(others))
	for i, id := range others {
		w, _ := tri.Vertex(id)
		pts[i] = polar{
			id:    id,
			angle: math.Atan2(w.P.Y-apex.P.Y, w.P.X-apex.P.X),
			len:   math.Sqrt(geom.SquaredDistance(apex.P, w.P)),
		}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].angle < pts[j].angle })

	n := len(pts)
	gap := func(i int) float64 {
		j := (i + 1) % n
		d := pts[j].angle - pts[i].angle
		if d < 0 {
			d += 2 * math.Pi
		}
		return d
	}

	inCluster := make([]bool, n)
	for i := 0; i < n; i++ {
		if gap(i) < clusterAngleThreshold {
			inCluster[i] = true
			inCluster[(i+1)%n] = true
		}
	}

	// Begin the scan just after a wide gap so a run that wraps across the
	// atan2 seam at +/-pi is collected whole rather than in two pieces.
	start := 0
	for i := 0; i < n; i++ {
		if !(gap((i+n-1)%n) < clusterAngleThreshold) {
			start = i
			break
		}
	}

	visited := make([]bool, n)
	var clusters []Cluster
	for k := 0; k < n; k++ {
		i := (start + k) % n
		if !inCluster[i] || visited[i] {
			continue
		}
		var members []core.VertexID
		rmin := math.Inf(1)
		j := i
		for {
			if visited[j] {
				break
			}
			visited[j] = true
			members = append(members, pts[j].id)
			if pts[j].len < rmin {
				rmin = pts[j].len
			}
			next := (j + 1) % n
			if !inCluster[j] || !(gap(j) < clusterAngleThreshold) || visited[next] {
				break
			}
			j = next
		}
		if len(members) >= 2 {
			clusters = append(clusters, Cluster{Apex: v, Segments: members, RMin: rmin})
		}
	}
	return clusters
}

// incidentSegmentEndpoints returns, for each constrained edge touching v,
// the vertex at its other endpoint, deduplicated.
func incidentSegmentEndpoints(tri core.Triangulation, v core.VertexID) []core.VertexID {
	seen := make(map[core.VertexID]bool)
	var out []core.VertexID

	for _, fid := range tri.IncidentFacesFrom(v, 0) {
		f, ok := tri.Face(fid)
		if !ok {
			continue
		}
		idxV := -1
		for i, id := range f.V {
			if id == v {
				idxV = i
				break
			}
		}
		if idxV < 0 {
			continue
		}
		for i := 0; i < 3; i++ {
			if i == idxV || !f.Constrained[i] {
				continue
			}
			a, b := f.V[(i+2)%3], f.V[(i+1)%3]
			other := a
			if a == v {
				other = b
			}
			if other != v && !seen[other] {
				seen[other] = true
				out = append(out, other)
			}
		}
	}
	return out
}
