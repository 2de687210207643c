package bfs_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

func xy(x, y int) grid.Coord { return grid.Coord{X: x, Y: y} }

// TestBFS_LevelOrder checks the exact visit order on an open 3×3 grid.
func TestBFS_LevelOrder(t *testing.T) {
	g := grid.New(3, 3)
	res, err := bfs.BFS(g)
	require.NoError(t, err)

	want := []grid.Coord{
		xy(0, 0),
		xy(1, 0), xy(0, 1),
		xy(2, 0), xy(1, 1), xy(0, 2),
		xy(2, 1), xy(1, 2),
		xy(2, 2),
	}
	assert.Equal(t, want, res.Visited)
	assert.Equal(t, 9, res.Steps, "no cell is queued twice")

	require.True(t, res.Found)
	assert.Equal(t, []grid.Coord{xy(0, 0), xy(1, 0), xy(2, 0), xy(2, 1), xy(2, 2)}, res.Path)
	assert.Equal(t, 4.0, res.Cost)
}

// TestBFS_DepthsNonDecreasing verifies level ordering on a walled grid.
func TestBFS_DepthsNonDecreasing(t *testing.T) {
	g, err := grid.Parse(`
		S.#....
		.##.##.
		...#...
		##...#G
	`)
	require.NoError(t, err)
	res, err := bfs.BFS(g, search.WithDiagonal(true))
	require.NoError(t, err)

	seen := make(map[grid.Coord]bool)
	last := 0.0
	for _, c := range res.Visited {
		require.False(t, seen[c], "visited twice: %v", c)
		seen[c] = true
		cell, _ := g.CellAt(c)
		assert.GreaterOrEqual(t, cell.Distance, last, "at %v", c)
		last = cell.Distance
	}
	assert.True(t, res.Found)
	assert.Equal(t, float64(res.Hops()), res.Cost)
}

// TestBFS_Unreachable leaves the path empty without error.
func TestBFS_Unreachable(t *testing.T) {
	g, err := grid.Parse(`
		S.#.
		..#G
	`)
	require.NoError(t, err)
	res, err := bfs.BFS(g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Len(t, res.Visited, 4)

	far, _ := g.At(3, 0)
	assert.True(t, math.IsInf(far.Distance, 1))
}

// TestBFS_Wraparound reaches Goal across the border.
func TestBFS_Wraparound(t *testing.T) {
	g, err := grid.Parse("S#.G")
	require.NoError(t, err)

	res, err := bfs.BFS(g, search.WithBoundaries(false))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []grid.Coord{xy(0, 0), xy(3, 0)}, res.Path)
}

// TestFrom seeds at an explicit cell.
func TestFrom(t *testing.T) {
	g := grid.New(4, 1)
	res, err := bfs.From(g, xy(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{xy(2, 0), xy(3, 0), xy(1, 0), xy(0, 0)}, res.Visited)
	assert.Equal(t, []grid.Coord{xy(2, 0), xy(3, 0)}, res.Path)

	_, err = bfs.From(g, xy(4, 0))
	assert.ErrorIs(t, err, search.ErrStartOutOfRange)
}

// TestBFS_Noop covers graceful degradation.
func TestBFS_Noop(t *testing.T) {
	for _, g := range []*grid.Grid{nil, grid.New(0, 5), grid.New(2, 2, grid.WithoutMarkers())} {
		res, err := bfs.Searcher.Search(g)
		require.NoError(t, err)
		assert.Empty(t, res.Visited)
		assert.Equal(t, bfs.Name, res.Algorithm)
	}
}

// TestBFS_Hooks checks that OnPath fires once and hook errors abort.
func TestBFS_Hooks(t *testing.T) {
	g := grid.New(3, 3)
	var paths [][]grid.Coord
	_, err := bfs.BFS(g, search.WithOnPath(func(p []grid.Coord) error {
		paths = append(paths, p)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Len(t, paths[0], 5)

	g.ResetAllNodes()
	bad := errors.New("bad enqueue")
	res, err := bfs.BFS(g, search.WithOnEnqueue(func(grid.Coord) error { return bad }))
	require.ErrorIs(t, err, bad)
	assert.Equal(t, []grid.Coord{xy(0, 0)}, res.Visited)
}

// TestBFS_Cancelled stops between steps.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := grid.New(5, 5)
	n := 0
	res, err := bfs.BFS(g,
		search.WithContext(ctx),
		search.WithOnVisit(func(grid.Coord) error {
			if n++; n == 4 {
				cancel()
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, res.Visited, 4)
}
