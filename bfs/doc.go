// Package bfs provides breadth-first traversal of a grid.Grid, recording
// visit order, hop depth and predecessor links.
//
// What
//
//   - Explore cells in non-decreasing hop distance from Start (or an explicit
//     origin via From).
//   - Each pop fires OnDequeue; a Visited cell is skipped, otherwise it is
//     visited (OnVisit) and every passable neighbor that is neither Visited
//     nor Queued is marked Queued and appended (OnEnqueue).
//   - Cell.Distance holds the hop depth of every reached cell.
//   - Reaching Goal records Result.Path (Start→Goal) and fires OnPath; the
//     traversal still continues until the queue drains.
//
// Determinism
//
//	Neighbors are enqueued in the fixed grid order (top, top-right, right,
//	... top-left), so the visit sequence is fully reproducible.
//
// Complexity (N = W×H)
//
//   - Time:   O(N), each cell enqueued at most once.
//   - Memory: O(N) for the queue.
//
// Errors
//
//   - search.ErrOptionViolation  invalid option.
//   - search.ErrStartOutOfRange  From origin outside the grid.
//   - ctx.Err()                  cancellation between steps.
//   - wrapped hook errors.
package bfs
