package search

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/grid"
)

// Run is the per-invocation context of one algorithm over a live grid.
// It couples each discrete step (visit, enqueue, dequeue, path) with its
// hook and the pacing delay, so suspension only ever happens between steps.
// A Run holds no state once the algorithm returns.
type Run struct {
	Grid   *grid.Grid
	Opts   Options
	Result *Result

	// Strict limits Passable to the exact Traversable type, excluding the
	// Start and Goal markers. Count mode uses it.
	Strict bool

	name  string
	log   *zap.Logger
	began time.Time
}

// NewRun validates opts and prepares a run named name over g.
func NewRun(name string, g *grid.Grid, opts ...Option) (*Run, error) {
	o, err := Build(opts...)
	if err != nil {
		return nil, err
	}
	r := &Run{
		Grid:   g,
		Opts:   o,
		Result: &Result{Algorithm: name},
		name:   name,
		log:    o.Logger.With(zap.String("algorithm", name)),
		began:  time.Now(),
	}
	if g != nil {
		r.Result.Visited = make([]grid.Coord, 0, g.Size())
		r.log.Debug("run started",
			zap.Int("columns", g.Columns()),
			zap.Int("rows", g.Rows()),
			zap.Stringer("traversable", o.Traversable),
			zap.Bool("boundaries", o.Boundaries),
			zap.Bool("diagonal", o.Diagonal),
			zap.Duration("delay", o.Delay),
		)
	}
	return r, nil
}

// Ready reports whether there is a grid with cells to search.
func (r *Run) Ready() bool {
	return r.Grid != nil && r.Grid.Size() > 0
}

// Origin resolves at to a cell of the run's grid, or returns
// ErrStartOutOfRange.
func (r *Run) Origin(at grid.Coord) (*grid.Cell, error) {
	c, ok := r.Grid.CellAt(at)
	if !ok {
		return nil, fmt.Errorf("%w: %v on %dx%d grid", ErrStartOutOfRange, at, r.Grid.Columns(), r.Grid.Rows())
	}
	return c, nil
}

// Logger returns the run-scoped logger.
func (r *Run) Logger() *zap.Logger { return r.log }

// Passable reports whether a search may step onto c.
func (r *Run) Passable(c *grid.Cell) bool {
	t := c.Type()
	if t == r.Opts.Traversable {
		return true
	}
	return !r.Strict && (t == grid.Start || t == grid.Goal)
}

// Neighbors returns the unit-step neighbors of c under the run's boundary
// and diagonal settings, in grid order.
func (r *Run) Neighbors(c *grid.Cell) []*grid.Cell {
	return r.Grid.Neighbors(c, r.Opts.Boundaries, r.Opts.Diagonal, 1)
}

// Visit marks c Visited, records it in Result.Visited, fires OnVisit and paces.
// A cell that is already Visited is not recorded twice.
func (r *Run) Visit(c *grid.Cell) error {
	if c.State() == grid.Visited {
		return nil
	}
	r.Grid.Visit(c)
	r.Result.Visited = append(r.Result.Visited, c.Coord())
	if err := r.Opts.OnVisit(c.Coord()); err != nil {
		return fmt.Errorf("%s: OnVisit hook at %v: %w", r.name, c.Coord(), err)
	}
	return r.Pace()
}

// Enqueue marks c Queued (unless it is already Visited), fires OnEnqueue and
// paces. Pairing the frontier insert with the state change keeps callers
// from inserting a cell twice when they check State first.
func (r *Run) Enqueue(c *grid.Cell) error {
	r.Grid.SetState(c, grid.Queued)
	if err := r.Opts.OnEnqueue(c.Coord()); err != nil {
		return fmt.Errorf("%s: OnEnqueue hook at %v: %w", r.name, c.Coord(), err)
	}
	return r.Pace()
}

// Dequeue counts a frontier pop, fires OnDequeue and paces.
func (r *Run) Dequeue(c *grid.Cell) error {
	r.Result.Steps++
	if err := r.Opts.OnDequeue(c.Coord()); err != nil {
		return fmt.Errorf("%s: OnDequeue hook at %v: %w", r.name, c.Coord(), err)
	}
	return r.Pace()
}

// Found reconstructs the path to goal, stores it with its cost, fires OnPath
// and paces.
func (r *Run) Found(goal *grid.Cell, cost float64) error {
	r.Result.Path = TracePath(r.Grid, goal)
	r.Result.Found = true
	r.Result.Cost = cost
	if err := r.Opts.OnPath(r.Result.Path); err != nil {
		return fmt.Errorf("%s: OnPath hook: %w", r.name, err)
	}
	return r.Pace()
}

// Pace returns the context error if the run was cancelled, then sleeps for
// the configured delay, waking early on cancellation.
func (r *Run) Pace() error {
	ctx := r.Opts.Ctx
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Opts.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(r.Opts.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Complete logs the outcome, fires OnComplete and returns the result.
func (r *Run) Complete() *Result {
	r.log.Debug("run finished",
		zap.Int("visited", len(r.Result.Visited)),
		zap.Int("steps", r.Result.Steps),
		zap.Bool("found", r.Result.Found),
		zap.Int("hops", r.Result.Hops()),
		zap.Int("groups", r.Result.Groups),
		zap.Duration("elapsed", time.Since(r.began)),
	)
	r.Opts.OnComplete(r.Result)
	return r.Result
}

// Abort logs err at debug level and returns the partial result with it.
// Cells keep whatever Queued/Visited marks they reached; a reset clears them.
func (r *Run) Abort(err error) (*Result, error) {
	r.log.Debug("run aborted", zap.Error(err), zap.Int("visited", len(r.Result.Visited)))
	return r.Result, err
}
