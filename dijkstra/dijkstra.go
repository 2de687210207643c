package dijkstra

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Name is the selector name of Dijkstra's algorithm.
const Name = "dijkstra"

// Searcher runs Dijkstra from Start to Goal.
var Searcher = search.NewSearcher(Name, Dijkstra)

// Dijkstra finds a fewest-hop path from Start to Goal. Every move, diagonal
// ones included, costs one hop. The search stops as soon as Goal is popped;
// an exhausted frontier means no path and is not an error.
//
// Missing Start or Goal, or an empty grid, is a no-op.
func Dijkstra(g *grid.Grid, opts ...search.Option) (*search.Result, error) {
	r, err := search.NewRun(Name, g, opts...)
	if err != nil {
		return nil, err
	}
	if !r.Ready() {
		return r.Complete(), nil
	}
	start, okS := g.StartNode()
	goal, okG := g.EndNode()
	if !okS || !okG {
		return r.Complete(), nil
	}

	if err = relaxAll(r, start, goal); err != nil {
		return r.Abort(err)
	}
	return r.Complete(), nil
}

// relaxAll drives the frontier. Stale entries for cells already Visited are
// dropped on pop (lazy decrease-key).
func relaxAll(r *search.Run, start, goal *grid.Cell) error {
	pq := search.NewPriorityQueue(r.Grid.Size())
	start.Distance = 0
	pq.Push(start, 0)

	for pq.Len() > 0 {
		cur, _ := pq.Pop()
		if cur.State() == grid.Visited {
			continue
		}
		if err := r.Dequeue(cur); err != nil {
			return err
		}
		if cur == goal {
			return r.Found(goal, goal.Distance)
		}
		if err := r.Visit(cur); err != nil {
			return err
		}

		// 1) relax each passable neighbor not yet settled
		for _, nb := range r.Neighbors(cur) {
			if nb.State() == grid.Visited || !r.Passable(nb) {
				continue
			}
			alt := cur.Distance + 1
			if alt >= nb.Distance {
				continue
			}
			nb.Distance = alt
			nb.SetPrevious(cur.Coord())
			pq.Push(nb, alt)
			// 2) announce the first insertion only
			if nb.State() == grid.Queued {
				continue
			}
			if err := r.Enqueue(nb); err != nil {
				return err
			}
		}
	}
	return nil
}
