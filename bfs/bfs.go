package bfs

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Name is the selector name of breadth-first traversal.
const Name = "bfs"

// Searcher runs BFS from Start.
var Searcher = search.NewSearcher(Name, BFS)

// walker encapsulates mutable BFS state.
type walker struct {
	r     *search.Run
	queue []*grid.Cell
}

// BFS explores every cell reachable from Start in level order.
// When Goal is reached its path is recorded in Result.Path, but the
// traversal still covers the whole reachable region.
// A grid without Start yields an empty result.
func BFS(g *grid.Grid, opts ...search.Option) (*search.Result, error) {
	r, err := search.NewRun(Name, g, opts...)
	if err != nil {
		return nil, err
	}
	if !r.Ready() {
		return r.Complete(), nil
	}
	start, ok := g.StartNode()
	if !ok {
		return r.Complete(), nil
	}
	return run(r, start)
}

// From is BFS seeded at an arbitrary cell.
// Returns search.ErrStartOutOfRange when from lies outside the grid.
func From(g *grid.Grid, from grid.Coord, opts ...search.Option) (*search.Result, error) {
	r, err := search.NewRun(Name, g, opts...)
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
	return run(r, origin)
}

func run(r *search.Run, origin *grid.Cell) (*search.Result, error) {
	w := &walker{r: r, queue: make([]*grid.Cell, 0, r.Grid.Size())}
	origin.Distance = 0
	w.queue = append(w.queue, origin)
	if err := w.loop(); err != nil {
		return r.Abort(err)
	}
	return r.Complete(), nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.r.Dequeue(cur); err != nil {
			return err
		}
		if cur.State() == grid.Visited {
			continue
		}
		if err := w.r.Visit(cur); err != nil {
			return err
		}
		if cur.Type() == grid.Goal && !w.r.Result.Found {
			if err := w.r.Found(cur, cur.Distance); err != nil {
				return err
			}
		}
		if err := w.enqueueNeighbors(cur); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors pushes each passable neighbor that is neither Visited nor
// already Queued, linking it back to cur at depth cur.Distance+1.
func (w *walker) enqueueNeighbors(cur *grid.Cell) error {
	for _, nb := range w.r.Neighbors(cur) {
		if nb.State() != grid.Unvisited || !w.r.Passable(nb) {
			continue
		}
		nb.Distance = cur.Distance + 1
		nb.SetPrevious(cur.Coord())
		if err := w.r.Enqueue(nb); err != nil {
			return err
		}
		w.queue = append(w.queue, nb)
	}
	return nil
}
