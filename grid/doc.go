// Package grid models the rectangular board that every search in gridwalk
// runs on.
//
// What:
//
//   - Grid owns columns×rows cells indexed [x][y]; y grows downward.
//   - Each Cell has a user-edited type (Empty, Wall, Start, Goal), a per-run
//     traversal state (Unvisited, Queued, Visited) and scratch scores for
//     Dijkstra and A*. The predecessor link is stored as a Coord.
//   - Neighbors returns 4 or 8 neighbors in a fixed clockwise order starting
//     at the top, either clipped at the border or wrapped around a torus.
//   - UpdateNode keeps exactly one Start and one Goal.
//   - Connect carves the wall between two cells two steps apart (maze helper).
//   - Every effective type or state change is reported to a Listener, so the
//     presentation layer never has to poll cells.
//
// Invariants:
//
//   - Dimensions are fixed for the lifetime of a Grid.
//   - Within a run a cell moves Unvisited→Queued→Visited or
//     Unvisited→Visited; SetState refuses backward moves. ResetAllNodes is
//     the only way back and never touches types.
//
// Degradation:
//
//	New with zero or negative dimensions returns an empty grid; queries on it
//	return nothing and mutations are no-ops. Out-of-range coordinates are
//	ignored rather than reported as errors. Parse is the one strict entry
//	point and returns sentinel errors for malformed layouts.
//
// Complexity:
//
//   - New, ResetAllNodes, UpdateAllNodes, StartNode, EndNode: O(W×H).
//   - Neighbors, Connect, At: O(1).
package grid
