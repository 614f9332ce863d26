// Package cluster implements the small-angle-cluster analysis Shewchuk's
// terminator criterion needs to guarantee refinement halts on PSLG input
// containing two constrained segments that meet at an angle under 60
// degrees. Ruppert's original algorithm alone can loop forever splitting
// the sliver such a cluster always regenerates near its apex; the
// terminator criterion instead recognizes the cluster, determines whether
// it is already "reduced" (every incident segment the same length, so no
// further split can shrink it), and if so tells the refinement engine to
// accept the otherwise-bad triangle there rather than split it again.
//
// Analyze walks a vertex's incident constrained segments, sorting them by
// angle and grouping consecutive runs under the 60 degree threshold into
// Clusters.
package cluster
