// Package search holds what every gridwalk algorithm shares: functional
// options, step hooks, pacing, the Result type, the Searcher interface and a
// deterministic priority queue.
//
// What
//
//   - Options configure the traversable cell type, boundary policy
//     (clipped or toroidal), 4- or 8-neighborhoods, a per-step delay, a
//     random source, a zap logger and five hooks:
//   - OnEnqueue  (a cell joins a frontier)
//   - OnDequeue  (a cell leaves the frontier for expansion, "pointed")
//   - OnVisit    (a cell is marked Visited)
//   - OnPath     (a Start→Goal path is known)
//   - OnComplete (the run finished)
//   - Run binds those options to a live *grid.Grid. Each step helper changes
//     the cell state, calls the hook and then paces, so a run can only be
//     suspended or cancelled between steps.
//   - Searcher lets callers treat DFS, BFS, Dijkstra, A* and maze carving
//     uniformly.
//
// Pacing and cancellation
//
//	Runs are sequential. Hooks are invoked synchronously; a hook that needs
//	to wait for an animation frame simply blocks before returning. Delay
//	sleeps after each step and wakes early when Ctx is cancelled. On
//	cancellation the run returns ctx.Err() and leaves cells Queued/Visited;
//	grid.ResetAllNodes clears them before the next run.
//
// Errors
//
//   - ErrOptionViolation  for a negative delay or a marker used as traversable type.
//   - ErrStartOutOfRange  for an explicit origin outside the grid.
//   - context errors      when Ctx is done.
//   - wrapped hook errors.
//
// Missing Start/Goal, empty grids and unreachable goals are not errors: the
// run returns an empty or partial Result.
package search
