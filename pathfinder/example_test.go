package pathfinder_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridwalk/pathfinder"
	"github.com/katalvlaran/gridwalk/search"
)

// ExampleSession_Run edits a grid, then runs two searches over it.
func ExampleSession_Run() {
	s, err := pathfinder.NewSession(6, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = s.Load(`
		S..#..
		.#.#..
		.#....
		.####G
	`); err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, alg := range []pathfinder.Algorithm{pathfinder.BFS, pathfinder.AStar} {
		rep, err := s.Run(context.Background(), alg, search.WithDiagonal(false))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: hops=%d path=%v\n", rep.Algorithm, rep.Result.Hops(), rep.Result.Path)
	}
	// Output:
	// bfs: hops=8 path=[0,0 1,0 2,0 2,1 2,2 3,2 4,2 5,2 5,3]
	// astar: hops=8 path=[0,0 1,0 2,0 2,1 2,2 3,2 4,2 5,2 5,3]
}
