// Package engine is the public facade over this module: it wires
// packages core, region, conform, cluster, trait and refine into the
// single entry point a caller actually wants, "take a PSLG, hand back a
// quality mesh."
//
// It provides one free function and one stateful type:
//
//   - Run: build a constrained Delaunay triangulation of a PSLG, mark its
//     in-domain faces, restore Gabriel conformance, and refine every
//     marked triangle to the configured quality bound, all in one call.
//
//   - Session: the same pipeline exposed step by step, for a caller that
//     wants to inspect or redirect the mesh between increments instead of
//     running it to completion. Run is implemented in terms of Session.
//
// Run returns simple Go types (a *core.Mesh and a Result summary); no
// channel, goroutine, or background worker survives the call, matching
// this repository's single-threaded-per-mesh concurrency model (see
// core.Mesh). Session is likewise single-threaded: callers sharing one
// across goroutines must serialize their own access.
package engine
