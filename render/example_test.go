package render_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/render"
)

// ExampleFrames prints one frame per visit and enqueue, then the final path.
func ExampleFrames() {
	g := grid.New(3, 1)
	f := render.NewFrames(os.Stdout, g, false)
	if _, err := bfs.BFS(g, f.Options()...); err != nil {
		fmt.Println("error:", err)
		return
	}
	// Output:
	// S.G
	//
	// SoG
	//
	// S*G
	//
	// S*G
	//
	// S*G
	//
	// S@G
}

// ExampleNewImage reports the pixel size of a rasterized grid.
func ExampleNewImage() {
	g := grid.New(8, 5)
	m := render.NewImage(g, nil, 10)
	fmt.Println(m.Bounds().Dx(), m.Bounds().Dy(), m.At(0, 0) == render.ColorStart)
	// Output: 80 50 true
}
