// Package search provides tunable options, hooks, results and sentinel
// errors shared by every traversal and path search in gridwalk.
package search

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for search execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStartOutOfRange is returned when an explicit origin lies outside the grid.
	ErrStartOutOfRange = errors.New("search: start coordinate out of range")
)

// defaultSeed makes randomized runs reproducible unless a source is given.
const defaultSeed int64 = 1

// Hook is called with the coordinate of the cell a step concerns.
// Returning an error aborts the run and propagates that error.
type Hook func(c grid.Coord) error

// PathHook receives a reconstructed path in Start→Goal order.
type PathHook func(path []grid.Coord) error

// Option configures a run via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation when the
// run starts.
type Option func(*Options)

// Options holds parameters and callbacks for one run.
type Options struct {
	// Ctx allows cooperative cancellation. It is polled between steps.
	Ctx context.Context

	// Traversable is the non-marker type a search may step onto.
	// Start and Goal are always passable for path searches.
	Traversable grid.CellType

	// Boundaries clips neighbors at the border; false wraps around.
	Boundaries bool

	// Diagonal enables 8-neighborhoods.
	Diagonal bool

	// Delay pauses after every step purely for animation pacing.
	Delay time.Duration

	// Rand drives randomized algorithms (maze carving).
	Rand *rand.Rand

	// Logger receives run-level debug logs.
	Logger *zap.Logger

	// OnVisit fires when a cell is marked Visited.
	OnVisit Hook

	// OnEnqueue fires when a cell is pushed onto a frontier.
	OnEnqueue Hook

	// OnDequeue fires when a cell is taken from a frontier for expansion
	// (the "pointed" cell).
	OnDequeue Hook

	// OnPath fires once a path to Goal is known.
	OnPath PathHook

	// OnComplete fires after a run ends without error.
	OnComplete func(res *Result)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Traversable = grid.Empty, Boundaries = true, Diagonal = false
//   - no delay, a deterministic random source, a no-op logger
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Traversable: grid.Empty,
		Boundaries:  true,
		Diagonal:    false,
		Delay:       0,
		Rand:        rand.New(rand.NewSource(defaultSeed)),
		Logger:      zap.NewNop(),
		OnVisit:     func(grid.Coord) error { return nil },
		OnEnqueue:   func(grid.Coord) error { return nil },
		OnDequeue:   func(grid.Coord) error { return nil },
		OnPath:      func([]grid.Coord) error { return nil },
		OnComplete:  func(*Result) {},
	}
}

// Build applies opts over DefaultOptions and reports the first violation.
func Build(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTraversable sets the cell type searches may step onto.
// Start and Goal are markers, not traversable types, and are rejected.
func WithTraversable(t grid.CellType) Option {
	return func(o *Options) {
		if t != grid.Empty && t != grid.Wall {
			o.err = fmt.Errorf("%w: traversable type must be empty or wall, got %v", ErrOptionViolation, t)
			return
		}
		o.Traversable = t
	}
}

// WithBoundaries selects hard edges (true) or wraparound (false).
func WithBoundaries(on bool) Option {
	return func(o *Options) {
		o.Boundaries = on
	}
}

// WithDiagonal toggles 8-directional neighbors.
func WithDiagonal(on bool) Option {
	return func(o *Options) {
		o.Diagonal = on
	}
}

// WithDelay sets the pause after every step.
//
//	d > 0:  pause d
//	d == 0: no pause
//	d < 0:  invalid → ErrOptionViolation
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithRand sets the random source for randomized algorithms.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed is WithRand over a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes run logs to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback for visits.
func WithOnVisit(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback for frontier pushes.
func WithOnEnqueue(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback for frontier pops.
func WithOnDequeue(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnPath registers a callback for the reconstructed path.
func WithOnPath(fn PathHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

// WithOnComplete registers a callback run once the search finishes.
func WithOnComplete(fn func(res *Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}

// Result holds the outcome of a run:
//   - Visited: cells in the order they were marked Visited.
//   - Path: Start→Goal when a path search reached Goal, empty otherwise.
//   - Found: whether Goal was reached.
//   - Cost: path cost (hops for Dijkstra, 1/√2 steps for A*).
//   - Groups: connected groups counted in count mode.
//   - Steps: frontier pops performed.
type Result struct {
	Algorithm string
	Visited   []grid.Coord
	Path      []grid.Coord
	Found     bool
	Cost      float64
	Groups    int
	Steps     int
}

// Hops returns the number of moves along Path.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Searcher is the common capability of every algorithm so callers can
// dispatch over them uniformly.
type Searcher interface {
	Name() string
	Search(g *grid.Grid, opts ...Option) (*Result, error)
}

// SearchFunc is the signature shared by the algorithm entry points.
type SearchFunc func(g *grid.Grid, opts ...Option) (*Result, error)

type namedSearcher struct {
	name string
	fn   SearchFunc
}

func (s namedSearcher) Name() string { return s.name }

func (s namedSearcher) Search(g *grid.Grid, opts ...Option) (*Result, error) {
	return s.fn(g, opts...)
}

// NewSearcher wraps fn as a Searcher called name.
func NewSearcher(name string, fn SearchFunc) Searcher {
	return namedSearcher{name: name, fn: fn}
}
