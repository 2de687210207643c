package compare_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/compare"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/pathfinder"
)

func corridor() *grid.Grid {
	g, err := grid.Parse(`
		S.....
		#####.
		G.....
	`)
	if err != nil {
		panic(err)
	}
	return g
}

func TestRun(t *testing.T) {
	algs := []pathfinder.Algorithm{pathfinder.BFS, pathfinder.Dijkstra, pathfinder.AStar, pathfinder.Count}
	sums, err := compare.Run(context.Background(), corridor, algs, 5)
	require.NoError(t, err)
	require.Len(t, sums, len(algs))

	for i, s := range sums {
		assert.Equal(t, algs[i], s.Algorithm)
		assert.Equal(t, 5, s.Runs)
		assert.LessOrEqual(t, s.Median, s.P90, s.Algorithm)
		assert.LessOrEqual(t, s.P90, s.Max, s.Algorithm)
		assert.LessOrEqual(t, s.Mean, s.Max, s.Algorithm)
		assert.Positive(t, s.Max, s.Algorithm)
	}
	for _, s := range sums[:3] {
		assert.True(t, s.Found, s.Algorithm)
		assert.Equal(t, 12, s.Hops, s.Algorithm)
		assert.Equal(t, 12.0, s.Cost, s.Algorithm)
	}
	assert.False(t, sums[3].Found)
	assert.Equal(t, 11, sums[3].Visited, "markers are not part of any group")
}

func TestRun_RepeatFloor(t *testing.T) {
	sums, err := compare.Run(context.Background(), corridor, []pathfinder.Algorithm{pathfinder.DFSStack}, 0)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, 1, sums[0].Runs)
	assert.Equal(t, sums[0].Mean, sums[0].Max)
}

func TestRun_Errors(t *testing.T) {
	_, err := compare.Run(context.Background(), corridor, []pathfinder.Algorithm{"bogus"}, 1)
	assert.ErrorIs(t, err, pathfinder.ErrUnknownAlgorithm)

	empty := func() *grid.Grid { return nil }
	_, err = compare.Run(context.Background(), empty, []pathfinder.Algorithm{pathfinder.BFS}, 1)
	assert.ErrorIs(t, err, compare.ErrNoGrid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sums, err := compare.Run(ctx, corridor, []pathfinder.Algorithm{pathfinder.BFS, pathfinder.AStar}, 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sums)
}

func TestWriteTable(t *testing.T) {
	sums, err := compare.Run(context.Background(), corridor, []pathfinder.Algorithm{pathfinder.BFS, pathfinder.AStar}, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, compare.WriteTable(&buf, sums))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ALGORITHM"))
	assert.True(t, strings.HasPrefix(lines[1], "bfs "))
	assert.True(t, strings.HasPrefix(lines[2], "astar "))
	assert.Contains(t, lines[1], "12.000")
}
