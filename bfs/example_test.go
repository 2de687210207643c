package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/grid"
)

// ExampleBFS shows the fewest-hop route around a wall.
func ExampleBFS() {
	g, _ := grid.Parse(`
		S...
		###.
		G...
	`)
	res, err := bfs.BFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Hops(), "hops")
	fmt.Print(g.RenderPath(res.Path))
	// Output:
	// 8 hops
	// S@@@
	// ###@
	// G@@@
}

// ExampleFrom prints hop depths measured from the centre of a 3×3 grid.
func ExampleFrom() {
	g := grid.New(3, 3, grid.WithoutMarkers())
	if _, err := bfs.From(g, grid.Coord{X: 1, Y: 1}); err != nil {
		fmt.Println("error:", err)
		return
	}
	for y := 0; y < g.Rows(); y++ {
		row := make([]string, 0, g.Columns())
		for x := 0; x < g.Columns(); x++ {
			c, _ := g.At(x, y)
			row = append(row, fmt.Sprint(c.Distance))
		}
		fmt.Println(strings.Join(row, " "))
	}
	// Output:
	// 2 1 2
	// 1 0 1
	// 2 1 2
}
