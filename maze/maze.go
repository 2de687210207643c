package maze

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Name is the selector name of the maze generator.
const Name = "dfs-maze"

// Searcher adapts DepthFirst to the common search interface.
var Searcher = search.NewSearcher(Name, DepthFirst)

// carveStep is the lattice spacing: one wall cell between two passages.
const carveStep = 2

// DepthFirst turns g into a perfect maze by randomized depth-first carving.
//
// Every cell becomes a Wall, then carving starts at the Start cell (or at
// (0,0) when there is none). Each popped cell looks at its Unvisited
// neighbors two steps away; if any exist it is pushed back, one of them is
// chosen with Options.Rand, the wall between them is opened with
// grid.Connect, and the chosen cell is turned Empty, visited and pushed.
//
// Afterwards the Start type is restored and every cell is reset to
// Unvisited. Goal is not re-placed; callers do that (see
// grid.RandomizeEnd). Result.Visited lists the lattice cells in carve
// order, so exactly len(Visited)-1 walls are removed.
//
// Carving always uses hard boundaries and cardinal moves, whatever the
// Boundaries and Diagonal options say.
func DepthFirst(g *grid.Grid, opts ...search.Option) (*search.Result, error) {
	r, err := search.NewRun(Name, g, opts...)
	if err != nil {
		return nil, err
	}
	if !r.Ready() {
		return r.Complete(), nil
	}

	seed, hasStart := g.StartNode()
	if !hasStart {
		seed, _ = g.At(0, 0)
	}

	g.ResetAllNodes()
	g.UpdateAllNodes(grid.Wall)
	g.SetType(seed, grid.Empty)

	c := &carver{r: r}
	if err = c.carve(seed); err != nil {
		return r.Abort(err)
	}

	if hasStart {
		g.SetType(seed, grid.Start)
	}
	g.ResetAllNodes()

	r.Logger().Debug("maze carved",
		zap.Stringer("seed", seed.Coord()),
		zap.Int("cells", len(r.Result.Visited)),
		zap.Int("passages", c.passages),
	)
	return r.Complete(), nil
}

type carver struct {
	r        *search.Run
	passages int
}

func (c *carver) carve(seed *grid.Cell) error {
	r := c.r
	if err := r.Visit(seed); err != nil {
		return err
	}
	stack := []*grid.Cell{seed}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := r.Dequeue(cur); err != nil {
			return err
		}

		cands := c.candidates(cur)
		if len(cands) == 0 {
			continue
		}
		stack = append(stack, cur)

		next := cands[r.Opts.Rand.Intn(len(cands))]
		if r.Grid.Connect(cur, next) {
			c.passages++
		}
		r.Grid.SetType(next, grid.Empty)
		if err := r.Visit(next); err != nil {
			return err
		}
		stack = append(stack, next)
	}
	return nil
}

// candidates returns the Unvisited lattice neighbors of cur.
func (c *carver) candidates(cur *grid.Cell) []*grid.Cell {
	var out []*grid.Cell
	for _, nb := range c.r.Grid.Neighbors(cur, true, false, carveStep) {
		if nb.State() == grid.Unvisited {
			out = append(out, nb)
		}
	}
	return out
}
