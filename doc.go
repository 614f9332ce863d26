// Package refine2d is a 2D constrained Delaunay mesh refinement engine:
// hand it a planar straight-line graph and a quality bound, and it hands
// back a triangulation where every triangle inside the domain meets that
// bound, using Ruppert-style Delaunay refinement with Shewchuk's
// terminator criterion for the small-angle clusters that would otherwise
// keep it splitting forever.
//
// Quick start:
//
//	pslg, err := builder.Rectangle(10, 10)
//	res, err := engine.Run(pslg, engine.WithMinAngle(20.7))
//	// res.Mesh is a *core.Mesh; res.Mesh.FiniteFaces() lists its triangles.
//
// Subpackages:
//
//	geom/    — point, orientation, circumcenter and encroachment predicates
//	core/    — the triangulation data model and its Bowyer-Watson primitives
//	trait/   — the quality criterion (default: minimum-angle + optional area)
//	queue/   — the indexed priority queue refinement pops bad faces from
//	region/  — even-odd nesting flood fill marking which faces are in-domain
//	cluster/ — small-angle cluster analysis for the terminator criterion
//	conform/ — encroachment-driven segment splitting (Gabriel conformance)
//	refine/  — the refinement loop tying criteria, queue and cluster together
//	engine/  — the public Run entry point wiring every package above together
//	builder/ — parametric PSLG constructors (rectangles, polygons, wheels, ...)
//
// A caller who only needs the triangulation, not refinement, can use
// package core directly: NewMesh, Insert and InsertSegment build a plain
// constrained Delaunay triangulation with no quality guarantees.
package refine2d
