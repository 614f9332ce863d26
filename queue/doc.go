// Package queue implements BadFaceQueue, the indexed priority queue the
// refinement engine uses to pick which bad triangle to fix next.
//
// Unlike a plain container/heap consumer that tolerates stale entries (the
// usual "lazy decrease-key" pattern), the refinement loop needs to
// remove a specific face the instant it is destroyed by a retriangulation,
// even though that face may still be sitting unexamined in the middle of
// the heap. BadFaceQueue keeps a face ID -> heap index map alongside the
// heap slice so Remove(id) costs O(log n) instead of invalidating the
// whole queue.
//
// Complexity:
//   - Push:   O(log n)
//   - Pop:    O(log n)
//   - Remove: O(log n)
//   - Len:    O(1)
package queue
