// Package refine implements the refinement engine: the loop that repairs
// one bad triangle per step until the mesh satisfies the configured
// quality criterion everywhere, or the remaining bad triangles are all
// attributable to an unreducible small-angle cluster (package cluster) and
// therefore permanently accepted under Shewchuk's terminator criterion.
//
// RefineStep is the atomic unit of work: pop the worst queued face, and
//   - encroachment: if that face's circumcenter would encroach on a
//     constrained segment bounding its conflict zone, withhold the
//     circumcenter and split that segment at its midpoint, unless
//     Shewchuk's terminator (refineFace's cluster Case A/Case B) finds the
//     segment protected by a reduced cluster. This keeps every constrained
//     segment Gabriel, which is what lets Delaunay refinement terminate in
//     the first place.
//   - insertion: otherwise insert the circumcenter with
//     core.Triangulation's star_hole primitive, then re-test every face
//     newly incident to it and requeue the ones still bad.
//
// Both paths are driven entirely through core.Triangulation and
// trait.Criteria, so RefineStep never reaches into core.Mesh's internals.
package refine
