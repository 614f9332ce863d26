package engine

import (
	"fmt"

	"github.com/gomesh/refine2d/cluster"
	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
	"github.com/gomesh/refine2d/trait"
)

// PSLG is a planar straight-line graph: the input to Run. Points are the
// vertex positions; Segments name constrained edges by index pair into
// Points. Segments need not already be Delaunay edges of the triangulated
// point set; Run recovers each one by splitting it where crossing edges
// meet it, if necessary (see core.Mesh.InsertSegment).
type PSLG struct {
	Points   []geom.Point
	Segments [][2]int
}

// Result summarizes one Run call: the triangulation it produced and a few
// counters useful for diagnostics or golden-file assertions in tests.
type Result struct {
	Mesh *core.Mesh

	// RefinementSteps is how many RefineStep calls Run performed.
	RefinementSteps int
	// PointsInserted is how many Steiner points Run added via circumcenter
	// insertion (the "split the face" path of refine_face).
	PointsInserted int
	// SegmentSplits is how many constrained-edge splits Run performed,
	// across both conformance steps and refinement's own segment splits.
	SegmentSplits int
	// AcceptedBadFaces is how many triangles Run left below the quality
	// bound because their badness was rooted in an already-reduced
	// small-angle cluster (see package cluster).
	AcceptedBadFaces int
}

// Run triangulates pslg, marks its in-domain faces, restores Gabriel
// conformance on every constrained segment, and refines every marked
// triangle to the bound the supplied Options configure (Shewchuk's 20.7
// degree default if none is given).
//
// Errors:
//   - core.ErrEmptyPoints if pslg.Points is empty.
//   - core.ErrDegenerateInput if every point is collinear.
//   - core.ErrSegmentEndpoints if a segment names an out-of-range point index.
func Run(pslg PSLG, opts ...Option) (*Result, error) {
	if len(pslg.Points) == 0 {
		return nil, core.ErrEmptyPoints
	}
	if allCollinear(pslg.Points) {
		return nil, core.ErrDegenerateInput
	}
	for _, seg := range pslg.Segments {
		if seg[0] < 0 || seg[0] >= len(pslg.Points) || seg[1] < 0 || seg[1] >= len(pslg.Points) {
			return nil, fmt.Errorf("%w: segment %v", core.ErrSegmentEndpoints, seg)
		}
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	m := core.NewMesh()
	ids := make([]core.VertexID, len(pslg.Points))
	for i, p := range pslg.Points {
		ids[i] = m.Insert(p)
	}
	for _, seg := range pslg.Segments {
		m.InsertSegment(ids[seg[0]], ids[seg[1]])
	}

	criteria := trait.NewMinAngleTraits(cfg.traitOpts...)
	sess := NewSession(m, criteria)
	if len(cfg.seeds) > 0 {
		seedPoints := make([]geom.Point, len(cfg.seeds))
		for i, idx := range cfg.seeds {
			seedPoints[i] = pslg.Points[idx]
		}
		sess.SetSeeds(seedPoints, true, false)
	}
	sess.Init()

	// Run is Session driven to completion (or to cfg.maxSteps, if bounded)
	// one RefineStep at a time; RefineStep itself implements spec section
	// 4.4.7's interleave of conformance and refinement work.
	steps := 0
	for cfg.maxSteps == 0 || steps < cfg.maxSteps {
		if !sess.RefineStep() {
			break
		}
		steps++
	}

	return &Result{
		Mesh:             m,
		RefinementSteps:  steps,
		PointsInserted:   sess.PointsInserted(),
		SegmentSplits:    sess.SegmentSplits(),
		AcceptedBadFaces: sess.AcceptedBadFaces(),
	}, nil
}

// allCollinear reports whether every point in pts lies on a single line,
// which would leave no finite face for any triangulation to contain.
func allCollinear(pts []geom.Point) bool {
	if len(pts) < 3 {
		return true
	}
	a, b := pts[0], pts[1]
	for _, c := range pts[2:] {
		if geom.OrientationOf(a, b, c) != geom.Collinear {
			return false
		}
	}
	return true
}

// ClusterReport exposes, for diagnostics, the small-angle clusters
// currently incident to v in mesh's triangulation.
func ClusterReport(m *core.Mesh, v core.VertexID) []cluster.Cluster {
	return cluster.Analyze(m, v)
}
