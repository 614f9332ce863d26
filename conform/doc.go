// Package conform implements the conformance engine: the pass that runs
// before (and, via package engine's Session stepping, interleaved with)
// angle-and-area refinement to restore the Gabriel property every
// constrained segment must have. A segment is Gabriel iff no mesh vertex
// lies in its closed diametral disk; package geom's EncroachesSegment is
// exactly that test.
//
// An encroached segment is repaired by inserting its midpoint as a new
// vertex (core.Triangulation.InsertOnEdge), which replaces it with two
// half-length sub-segments and is repeated on whichever of those is still
// encroached, so the process always terminates: each split strictly
// halves the offending segment's length, and a segment shorter than the
// local feature size of the input can encroach on nothing.
package conform
