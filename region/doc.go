// Package region computes which faces of a triangulation lie inside the
// domain to be meshed, marking them on the underlying core.Triangulation
// via SetMarked so the refinement engine knows which bad triangles to fix
// and which to leave alone (a sliver outside the domain is not a defect).
//
// The algorithm is a breadth-first flood fill over the face adjacency
// graph, with one domain-specific twist: a constrained edge is not an ordinary
// boundary, it is a parity toggle. Starting from the infinite face at
// nesting level zero (outside), crossing a constrained edge flips the
// level's parity; a face is inside the domain iff its level is odd. This
// lets one BFS pass correctly handle holes (islands of "outside" nested
// inside the domain) and islands-within-holes without any special casing,
// exactly as Ruppert's original formulation and CGAL's mark_facets
// require.
//
// Explicit seed points (MarkSeeds) override the default parity rule for
// whichever connected component of unconstrained-adjacent faces they land
// in, for PSLG inputs that describe multiply-connected regions the pure
// even-odd rule gets wrong (e.g. a domain whose boundary is not a single
// simple polygon).
package region
