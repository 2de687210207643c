package pathfinder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Report describes one finished (or aborted) run.
type Report struct {
	ID        uuid.UUID
	Algorithm Algorithm
	Result    *search.Result
	Elapsed   time.Duration
	// GoalPlaced is set when a maze run re-placed the Goal it overwrote.
	GoalPlaced bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRegistry replaces the default registry.
func WithRegistry(r *Registry) SessionOption {
	return func(s *Session) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger routes session logs to l.
func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithGridOptions is applied every time the session builds a grid.
func WithGridOptions(opts ...grid.Option) SessionOption {
	return func(s *Session) {
		s.gridOpts = append(s.gridOpts, opts...)
	}
}

// Session owns one grid and serializes access to it: a single run at a
// time, and no edits while a run is active. Each run starts from a freshly
// reset grid.
type Session struct {
	mu       sync.Mutex
	g        *grid.Grid
	running  bool
	registry *Registry
	log      *zap.Logger
	gridOpts []grid.Option
}

// NewSession builds a session over a fresh columns×rows grid with Start at
// the top-left and Goal at the bottom-right corner.
func NewSession(columns, rows int, opts ...SessionOption) (*Session, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, columns, rows)
	}
	s := &Session{
		registry: DefaultRegistry(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.g = grid.New(columns, rows, s.gridOpts...)
	return s, nil
}

// Grid returns the current grid. The pointer changes on Clear, Resize and Load.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g
}

// Running reports whether a run currently owns the grid.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Registry returns the registry used to resolve algorithms.
func (s *Session) Registry() *Registry { return s.registry }

// Run resets the grid and executes alg over it. Session-level context and
// logger options are applied first, so opts may override them. A second
// call while a run is active fails with ErrRunInProgress.
//
// After a maze run the Goal, which carving overwrites, is re-placed on a
// random Empty cell.
func (s *Session) Run(ctx context.Context, alg Algorithm, opts ...search.Option) (*Report, error) {
	searcher, err := s.registry.Lookup(alg)
	if err != nil {
		return nil, err
	}
	g, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer s.release()

	if ctx == nil {
		ctx = context.Background()
	}
	rep := &Report{ID: uuid.New(), Algorithm: alg}
	log := s.log.With(zap.String("run", rep.ID.String()), zap.Stringer("algorithm", alg))

	g.ResetAllNodes()
	log.Info("run started", zap.Int("columns", g.Columns()), zap.Int("rows", g.Rows()))

	began := time.Now()
	all := make([]search.Option, 0, len(opts)+2)
	all = append(all, search.WithContext(ctx), search.WithLogger(log))
	all = append(all, opts...)
	rep.Result, err = searcher.Search(g, all...)
	rep.Elapsed = time.Since(began)
	if err != nil {
		log.Warn("run aborted", zap.Error(err), zap.Duration("elapsed", rep.Elapsed))
		return rep, fmt.Errorf("pathfinder: %s run %s: %w", alg, rep.ID, err)
	}

	if alg == Maze {
		if _, ok := g.EndNode(); !ok {
			rep.GoalPlaced = g.RandomizeEnd()
		}
	}

	log.Info("run finished",
		zap.Int("visited", len(rep.Result.Visited)),
		zap.Bool("found", rep.Result.Found),
		zap.Int("hops", rep.Result.Hops()),
		zap.Int("groups", rep.Result.Groups),
		zap.Duration("elapsed", rep.Elapsed),
	)
	return rep, nil
}

// UpdateNode sets the type of (x,y), keeping Start and Goal unique.
func (s *Session) UpdateNode(x, y int, t grid.CellType) error {
	return s.edit(func(g *grid.Grid) (*grid.Grid, error) {
		if !g.UpdateNode(x, y, t) {
			return nil, fmt.Errorf("%w: %d,%d", ErrOutOfRange, x, y)
		}
		return g, nil
	})
}

// Reset clears the traversal state of every cell. Types are kept.
func (s *Session) Reset() error {
	return s.edit(func(g *grid.Grid) (*grid.Grid, error) {
		g.ResetAllNodes()
		return g, nil
	})
}

// Clear replaces the grid with a fresh one of the same size.
func (s *Session) Clear() error {
	return s.edit(func(g *grid.Grid) (*grid.Grid, error) {
		return grid.New(g.Columns(), g.Rows(), s.gridOpts...), nil
	})
}

// Resize replaces the grid with a fresh columns×rows one.
func (s *Session) Resize(columns, rows int) error {
	if columns <= 0 || rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, columns, rows)
	}
	return s.edit(func(*grid.Grid) (*grid.Grid, error) {
		return grid.New(columns, rows, s.gridOpts...), nil
	})
}

// Load replaces the grid with one parsed from layout (see grid.Parse).
func (s *Session) Load(layout string) error {
	return s.edit(func(*grid.Grid) (*grid.Grid, error) {
		return grid.Parse(layout, s.gridOpts...)
	})
}

// edit applies fn to the grid unless a run is active, installing the grid
// fn returns.
func (s *Session) edit(fn func(g *grid.Grid) (*grid.Grid, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunInProgress
	}
	g, err := fn(s.g)
	if err != nil {
		return err
	}
	s.g = g
	return nil
}

func (s *Session) acquire() (*grid.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil, ErrRunInProgress
	}
	s.running = true
	return s.g, nil
}

func (s *Session) release() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}
