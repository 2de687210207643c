// Package astar implements A* search from Start to Goal on a grid.Grid.
//
// Scores
//
//   - G: cost from Start. Cardinal steps cost 1, diagonal steps √2.
//   - H: Heuristic. Manhattan (L1) for 4-neighborhoods, Euclidean (L2) when
//     diagonal search is enabled, both computed with gonum's floats package.
//     With boundaries off each axis uses the shorter toroidal delta.
//   - F: G + H, the frontier priority.
//
// The frontier is a binary heap with ties broken by insertion order. A cell
// whose G improves while Queued is pushed again; the stale entry is dropped
// when it pops after the cell was settled.
//
// Hooks follow the dijkstra package: OnDequeue per live pop, OnVisit when a
// cell is settled, OnEnqueue on first insertion, OnPath once.
//
// Complexity (N = W×H): O(N log N) time, O(N) memory.
package astar
