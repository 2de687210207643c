// Package pathfinder is the orchestration layer over the gridwalk
// algorithms.
//
// What:
//
//   - Algorithm: the selector names (dfs-maze, dfs-stack, dfs-recursive,
//     bfs, dijkstra, astar, count) with ParseAlgorithm and Algorithms.
//   - Registry: name → search.Searcher, so every algorithm is dispatched
//     through one interface. DefaultRegistry binds the built-ins.
//   - Session: owns one grid.Grid. Run resets the grid, tags the run with a
//     UUID, logs start and finish through zap and refuses to start while
//     another run is active (ErrRunInProgress). Grid edits (UpdateNode,
//     Reset, Clear, Resize, Load) are refused during a run as well.
//
// Usage:
//
//	s, _ := pathfinder.NewSession(30, 20, pathfinder.WithLogger(logger))
//	_ = s.UpdateNode(4, 7, grid.Wall)
//	rep, err := s.Run(ctx, pathfinder.AStar,
//	    search.WithDiagonal(true),
//	    search.WithDelay(10*time.Millisecond),
//	    search.WithOnVisit(draw),
//	)
//
// Errors:
//
//   - ErrUnknownAlgorithm, ErrNilSearcher  registry misuse.
//   - ErrRunInProgress                     concurrent run or edit.
//   - ErrInvalidSize, ErrOutOfRange        bad grid edits.
//   - wrapped search errors                option violations, cancellation, hooks.
package pathfinder
