package astar

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Name is the selector name of A*.
const Name = "astar"

// Searcher runs A* from Start to Goal.
var Searcher = search.NewSearcher(Name, AStar)

// Norms passed to gonum's floats.Distance.
const (
	manhattan = 1
	euclidean = 2
)

// Heuristic estimates the remaining cost from a to b: Euclidean distance when
// diagonal moves are allowed, Manhattan otherwise. With wrap set, each axis
// uses the shorter way around the torus, so the estimate stays admissible
// when boundaries are off.
func Heuristic(g *grid.Grid, a, b grid.Coord, diagonal, wrap bool) float64 {
	l := float64(manhattan)
	if diagonal {
		l = euclidean
	}
	if !wrap || g == nil {
		return floats.Distance(
			[]float64{float64(a.X), float64(a.Y)},
			[]float64{float64(b.X), float64(b.Y)},
			l,
		)
	}
	dx := torusDelta(a.X, b.X, g.Columns())
	dy := torusDelta(a.Y, b.Y, g.Rows())
	return floats.Norm([]float64{dx, dy}, l)
}

func torusDelta(a, b, n int) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	if n > 0 && n-d < d {
		d = n - d
	}
	return float64(d)
}

// AStar finds a least-cost path from Start to Goal. Cardinal moves cost 1 and
// diagonal moves √2; the frontier is ordered by F = G + H with ties broken by
// insertion order. Visited cells are never reopened, which is exact because
// both heuristics are consistent for their move sets.
//
// Missing Start or Goal, or an empty grid, is a no-op. An unreachable Goal
// leaves Result.Path empty and is not an error.
func AStar(g *grid.Grid, opts ...search.Option) (*search.Result, error) {
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

	s := &solver{r: r, goal: goal, pq: search.NewPriorityQueue(g.Size())}
	if err = s.solve(start); err != nil {
		return r.Abort(err)
	}
	return r.Complete(), nil
}

// solver holds the open set of one A* run.
type solver struct {
	r    *search.Run
	goal *grid.Cell
	pq   *search.PriorityQueue
}

func (s *solver) h(c *grid.Cell) float64 {
	o := s.r.Opts
	return Heuristic(s.r.Grid, c.Coord(), s.goal.Coord(), o.Diagonal, !o.Boundaries)
}

func (s *solver) solve(start *grid.Cell) error {
	start.G = 0
	start.H = s.h(start)
	start.F = start.H
	s.pq.Push(start, start.F)

	for s.pq.Len() > 0 {
		cur, _ := s.pq.Pop()
		if cur.State() == grid.Visited {
			continue
		}
		if err := s.r.Dequeue(cur); err != nil {
			return err
		}
		if cur == s.goal {
			return s.r.Found(cur, cur.G)
		}
		if err := s.r.Visit(cur); err != nil {
			return err
		}
		if err := s.expand(cur); err != nil {
			return err
		}
	}
	return nil
}

// expand scores every open passable neighbor of cur and pushes those whose
// G improved. OnEnqueue fires only on a cell's first insertion.
func (s *solver) expand(cur *grid.Cell) error {
	for _, nb := range s.r.Neighbors(cur) {
		if nb.State() == grid.Visited || !s.r.Passable(nb) {
			continue
		}
		tentative := cur.G + search.StepCost(cur, nb)
		if tentative >= nb.G {
			continue
		}
		nb.G = tentative
		nb.H = s.h(nb)
		nb.F = nb.G + nb.H
		nb.SetPrevious(cur.Coord())
		s.pq.Push(nb, nb.F)

		if nb.State() == grid.Queued {
			continue
		}
		if err := s.r.Enqueue(nb); err != nil {
			return err
		}
	}
	return nil
}
