// Package dijkstra provides Dijkstra's shortest-path search from Start to
// Goal on a grid.Grid with uniform step cost.
//
// Overview:
//
//   - Every move costs one hop, diagonal moves included, so Cell.Distance is
//     a hop count and Result.Cost equals Result.Hops() when a path is found.
//   - The frontier is a binary min-heap (search.PriorityQueue). Equal
//     distances pop in insertion order, which follows the fixed neighbor
//     order of grid.Neighbors, so runs are deterministic.
//   - Decrease-key is lazy: an improved neighbor is pushed again and stale
//     entries for already Visited cells are dropped on pop.
//   - The search stops as soon as Goal leaves the frontier; the path is
//     rebuilt from predecessor links in Start→Goal order.
//
// Hooks:
//
//   - OnDequeue fires for every non-stale pop, Goal included.
//   - OnVisit fires when a cell is settled (Goal is never marked Visited).
//   - OnEnqueue fires on the first insertion of a cell only.
//   - OnPath fires once with the final path.
//
// Graceful degradation:
//
//   - Missing Start or Goal, a nil grid or a zero-sized grid: empty result, nil error.
//   - Unreachable Goal: the frontier empties, Result.Path stays empty, nil error.
//
// Complexity (N = W×H):
//
//   - Time:  O(N log N)
//   - Space: O(N) with at most 8N heap entries under lazy decrease-key.
package dijkstra
