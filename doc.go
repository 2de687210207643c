// Package gridwalk is a step-by-step pathfinding engine for rectangular
// grids: searches that can be paced, observed and cancelled one cell at a
// time, so a terminal or any other front end can watch them work.
//
// What is inside
//
//	grid/        cells, types (empty, wall, start, goal), traversal states,
//	             neighbor enumeration with optional wraparound, ASCII layouts
//	search/      shared options, hooks, pacing, frontier queue and path tracing
//	dfs/         depth-first traversal (explicit stack, recursive) and group count
//	bfs/         breadth-first traversal with hop depths
//	dijkstra/    uniform-cost shortest path
//	astar/       A* with Manhattan or Euclidean heuristics
//	maze/        depth-first maze carving
//	pathfinder/  algorithm registry and a session that serializes runs and edits
//	config/      .env, YAML and GRIDWALK_* settings
//	render/      PNG export and animated ASCII frames
//	compare/     repeated timed runs of several algorithms
//	cmd/gridwalk  the command-line front end
//
// Quick ASCII example:
//
//	S...      S@@@
//	###.  ->  ###@
//	G...      G@@@
//
// a BFS run over the left layout finds the 8-hop path drawn on the right.
//
//	go run ./cmd/gridwalk -layout_file maze.txt -algorithm bfs -animate
package gridwalk
