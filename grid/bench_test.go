package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridwalk/grid"
)

// BenchmarkNeighbors8 measures the 8-neighborhood query on a wrapped 200×200 grid.
func BenchmarkNeighbors8(b *testing.B) {
	g := grid.New(200, 200)
	c, _ := g.At(0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(c, false, true, 1)
	}
}

// BenchmarkResetAllNodes measures a full reset of a 200×200 grid.
func BenchmarkResetAllNodes(b *testing.B) {
	g := grid.New(200, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetAllNodes()
	}
}
