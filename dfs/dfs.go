package dfs

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// walker carries one run through the stack or recursive traversal.
type walker struct {
	r *search.Run
}

// Stack explores every cell reachable from Start with an explicit LIFO stack.
// A grid without Start yields an empty result.
func Stack(g *grid.Grid, opts ...search.Option) (*search.Result, error) {
	return fromStart(NameStack, g, opts, walker.stack)
}

// StackFrom is Stack seeded at an arbitrary cell.
// Returns search.ErrStartOutOfRange when from lies outside the grid.
func StackFrom(g *grid.Grid, from grid.Coord, opts ...search.Option) (*search.Result, error) {
	return fromCoord(NameStack, g, from, opts, walker.stack)
}

// Recursive explores every cell reachable from Start by recursive descent
// in neighbor order. Recursion depth is bounded by the cell count.
func Recursive(g *grid.Grid, opts ...search.Option) (*search.Result, error) {
	return fromStart(NameRecursive, g, opts, walker.descend)
}

// RecursiveFrom is Recursive seeded at an arbitrary cell.
func RecursiveFrom(g *grid.Grid, from grid.Coord, opts ...search.Option) (*search.Result, error) {
	return fromCoord(NameRecursive, g, from, opts, walker.descend)
}

type walkFunc func(w walker, origin *grid.Cell) error

func fromStart(name string, g *grid.Grid, opts []search.Option, walk walkFunc) (*search.Result, error) {
	r, err := search.NewRun(name, g, opts...)
	if err != nil {
		return nil, err
	}
	if !r.Ready() {
		return r.Complete(), nil
	}
	origin, ok := g.StartNode()
	if !ok {
		return r.Complete(), nil
	}
	if err = walk(walker{r: r}, origin); err != nil {
		return r.Abort(err)
	}
	return r.Complete(), nil
}

func fromCoord(name string, g *grid.Grid, from grid.Coord, opts []search.Option, walk walkFunc) (*search.Result, error) {
	r, err := search.NewRun(name, g, opts...)
	if err != nil {
		return nil, err
	}
	if !r.Ready() {
		return r.Complete(), nil
	}
	origin, err := r.Origin(from)
	if err != nil {
		return nil, err
	}
	if err = walk(walker{r: r}, origin); err != nil {
		return r.Abort(err)
	}
	return r.Complete(), nil
}

// stack pops the most recently pushed cell, skips it if already Visited,
// otherwise visits it and pushes every passable neighbor that is not yet
// Visited. A cell may sit on the stack more than once before its first pop.
func (w walker) stack(origin *grid.Cell) error {
	r := w.r
	stack := []*grid.Cell{origin}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := r.Dequeue(cur); err != nil {
			return err
		}
		if cur.State() == grid.Visited {
			continue
		}
		if err := r.Visit(cur); err != nil {
			return err
		}

		for _, nb := range r.Neighbors(cur) {
			if nb.State() == grid.Visited || !r.Passable(nb) {
				continue
			}
			if err := r.Enqueue(nb); err != nil {
				return err
			}
			stack = append(stack, nb)
		}
	}
	return nil
}

// descend visits c, then recurses into each unvisited passable neighbor in
// fixed neighbor order before returning.
func (w walker) descend(c *grid.Cell) error {
	r := w.r
	if err := r.Dequeue(c); err != nil {
		return err
	}
	if c.State() == grid.Visited {
		return nil
	}
	if err := r.Visit(c); err != nil {
		return err
	}
	for _, nb := range r.Neighbors(c) {
		if nb.State() == grid.Visited || !r.Passable(nb) {
			continue
		}
		if err := w.descend(nb); err != nil {
			return err
		}
	}
	return nil
}
