// Package dfs implements depth-first traversal of a grid.Grid in stack and
// recursive forms, plus connected-group counting.
//
// What:
//
//   - Stack(g, opts...): explicit LIFO stack seeded with Start. Each pop fires
//     OnDequeue; a cell already Visited is discarded, otherwise it is visited
//     and every passable, not-yet-Visited neighbor is pushed (OnEnqueue).
//     The filter only checks Visited, so a cell can be pushed several times
//     before its first pop.
//   - Recursive(g, opts...): the same visit/filter rule as recursion. Each
//     call fires OnDequeue, visits, then descends into neighbors in the fixed
//     grid order (top, top-right, right, ... top-left).
//   - StackFrom / RecursiveFrom: seeded at an explicit coordinate.
//   - CountGroups(g, opts...): repeats Stack from every Unvisited cell of
//     exactly the traversable type and counts the runs in Result.Groups.
//
// Determinism:
//
//	Neighbor order is fixed by grid.Neighbors, so visit order is fully
//	reproducible for a given grid and option set.
//
// Complexity (N = W×H):
//
//   - Time:   O(N) visits, O(8N) pushes in the worst case.
//   - Memory: O(8N) stack entries, or O(N) recursion depth for Recursive.
//
// Errors:
//
//   - search.ErrOptionViolation  invalid option (negative delay, bad type).
//   - search.ErrStartOutOfRange  StackFrom/RecursiveFrom origin off-grid.
//   - ctx.Err()                  cancellation, polled between steps.
//   - wrapped hook errors.
//
// A grid without Start, or with no cells, returns an empty result and no error.
package dfs
