// Package core defines the mesh data model the refinement engine operates
// on: stable face and vertex handles, the Triangulation capability every
// other package in this module consumes, and a concrete in-memory
// implementation of that capability (Mesh) suitable for building PSLGs,
// driving refinement, and exercising this repository's test suite.
//
// Handle stability:
//
// Per the spec's design notes, everything here is keyed on monotonically
// increasing IDs rather than recycled pointers or array slots. A face or
// vertex destroyed by retriangulation is deleted from the arena and its ID
// is never reused, so a package holding a stale FaceID simply gets
// ok=false back from Face() instead of silently reading the wrong triangle.
// This gives the same safety a generational (index, generation) handle
// would, at the cost of the arena's maps growing monotonically with the
// number of star_hole calls in a session — acceptable for the in-memory,
// single-session use this engine targets.
//
// Infinite faces:
//
// Mesh follows a textbook incremental-insertion (Bowyer-Watson) construction
// seeded with a synthetic bounding triangle that stands in for the usual
// point-at-infinity. Any face touching one of that triangle's three corner
// vertices is considered infinite; InfiniteFace/IsInfinite are defined in
// those terms. This substitution is described under D1 in SPEC_FULL.md.
package core
