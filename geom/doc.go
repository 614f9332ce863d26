// Package geom provides the planar point type and the numerical predicates
// the mesh refinement engine needs: orientation, circumcenters, squared
// distances, the minimum-angle quality measure and encroachment tests.
//
// Every predicate here is a pure function of its point arguments. None of
// them know about triangulations, faces or constraints; that separation is
// what lets the core/ and refine/ packages stay generic over whichever
// triangulation backend a caller plugs in.
//
// Robustness notes:
//
//   - All predicates use plain float64 arithmetic. They are adequate for
//     well-conditioned inputs (the scenarios in this repository's tests)
//     but are not exact/arbitrary-precision predicates. A production CDT
//     would normally swap these for an adaptive-precision implementation;
//     that swap is entirely local to this package.
package geom
