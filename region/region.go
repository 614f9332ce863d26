package region

import (
	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
)

// Mark flood-fills every face of tri and sets each face's Marked bit to
// whether it lies inside the domain, using the even-odd nesting rule: the
// infinite face starts at level zero (outside, unmarked), and crossing a
// constrained edge flips the level's parity. A face is inside the domain
// iff its level is odd.
//
// Mark visits every face reachable from the infinite face, which for a
// single connected triangulation (the only kind core.Mesh produces) is all
// of them.
func Mark(tri core.Triangulation) {
	level := propagateLevels(tri)
	for f, lvl := range level {
		tri.SetMarked(f, lvl%2 == 1)
	}
}

func propagateLevels(tri core.Triangulation) map[core.FaceID]int {
	level := make(map[core.FaceID]int)
	start := tri.InfiniteFace()
	if start == 0 {
		return level
	}

	level[start] = 0
	queue := []core.FaceID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		f, ok := tri.Face(cur)
		if !ok {
			continue
		}
		for i := 0; i < 3; i++ {
			nb := f.N[i]
			if nb == 0 {
				continue
			}
			if _, seen := level[nb]; seen {
				continue
			}
			lvl := level[cur]
			if f.Constrained[i] {
				lvl++
			}
			level[nb] = lvl
			queue = append(queue, nb)
		}
	}
	return level
}

// MarkSeeds forces the marked status of every face in the unconstrained-
// connected component containing each seed point to inside, overriding
// whatever the even-odd rule computed for it. Call this after Mark, for
// PSLG inputs whose domain is not simply described by nesting parity (a
// boundary that self-touches, or deliberately mismatched winding).
func MarkSeeds(tri core.Triangulation, seeds []geom.Point, inside bool) {
	for _, p := range seeds {
		f, ok := tri.Locate(p)
		if !ok {
			continue
		}
		for _, cell := range connectedCell(tri, f) {
			tri.SetMarked(cell, inside)
		}
	}
}

// connectedCell returns every face reachable from start without crossing a
// constrained edge: the "room" start's point sits in, bounded by PSLG
// segments on every side.
func connectedCell(tri core.Triangulation, start core.FaceID) []core.FaceID {
	visited := map[core.FaceID]bool{start: true}
	queue := []core.FaceID{start}
	var cell []core.FaceID

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cell = append(cell, cur)

		f, ok := tri.Face(cur)
		if !ok {
			continue
		}
		for i := 0; i < 3; i++ {
			nb := f.N[i]
			if nb == 0 || f.Constrained[i] || visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}
	return cell
}
