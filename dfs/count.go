package dfs

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// CountGroups counts connected groups of cells whose type is exactly the
// traversable type. It runs a stack traversal from every cell of that type
// still Unvisited, in x-major order, and increments Result.Groups once per
// traversal that visited at least one cell. Start and Goal are not part of
// any group.
//
// Complexity: O(W×H) time, O(W×H) stack in the worst case.
func CountGroups(g *grid.Grid, opts ...search.Option) (*search.Result, error) {
	r, err := search.NewRun(NameCount, g, opts...)
	if err != nil {
		return nil, err
	}
	if !r.Ready() {
		return r.Complete(), nil
	}
	r.Strict = true

	w := walker{r: r}
	for _, c := range g.Cells() {
		if c.State() != grid.Unvisited || !r.Passable(c) {
			continue
		}
		before := len(r.Result.Visited)
		if err = w.stack(c); err != nil {
			return r.Abort(err)
		}
		if len(r.Result.Visited) > before {
			r.Result.Groups++
			r.Logger().Debug("group exhausted",
				zap.Int("group", r.Result.Groups),
				zap.Stringer("seed", c.Coord()),
				zap.Int("cells", len(r.Result.Visited)-before),
			)
		}
	}
	return r.Complete(), nil
}
