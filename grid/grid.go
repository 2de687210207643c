package grid

import (
	"math/rand"
)

// defaultSeed keeps marker randomization reproducible when no source is supplied.
const defaultSeed int64 = 1

// Option configures a Grid at construction.
type Option func(*Grid)

// WithListener registers l to receive state and type change notifications.
// A nil listener is ignored.
func WithListener(l Listener) Option {
	return func(g *Grid) {
		if l != nil {
			g.listener = l
		}
	}
}

// WithoutMarkers skips the automatic Start/Goal placement.
func WithoutMarkers() Option {
	return func(g *Grid) {
		g.skipMarkers = true
	}
}

// WithRand sets the random source used by RandomizeStart and RandomizeEnd.
func WithRand(r *rand.Rand) Option {
	return func(g *Grid) {
		if r != nil {
			g.rng = r
		}
	}
}

// Grid owns a columns×rows block of cells indexed [x][y].
// Dimensions never change; resizing means building a new Grid.
//
// A Grid is not safe for concurrent mutation. Only one search may run over
// a Grid at a time; pathfinder.Session enforces this for callers.
type Grid struct {
	columns, rows int
	cells         [][]Cell

	listener    Listener
	rng         *rand.Rand
	skipMarkers bool
}

// New builds a grid with the given dimensions. Negative dimensions are
// treated as zero and yield an empty grid on which every operation is a
// no-op. Unless WithoutMarkers is given, Start is placed at (0,0) and Goal
// at (columns-1, rows-1); a single-cell grid only receives a Start.
//
// Complexity: O(W×H) time and memory.
func New(columns, rows int, opts ...Option) *Grid {
	if columns <= 0 || rows <= 0 {
		columns, rows = 0, 0
	}
	g := &Grid{
		columns:  columns,
		rows:     rows,
		listener: nopListener{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(defaultSeed))
	}

	g.cells = make([][]Cell, columns)
	for x := 0; x < columns; x++ {
		g.cells[x] = make([]Cell, rows)
		for y := 0; y < rows; y++ {
			g.cells[x][y] = newCell(x, y)
		}
	}

	if !g.skipMarkers && g.Size() > 0 {
		g.cells[0][0].typ = Start
		if g.Size() > 1 {
			g.cells[columns-1][rows-1].typ = Goal
		}
	}

	return g
}

// SetListener replaces the change listener. A nil listener silences events.
func (g *Grid) SetListener(l Listener) {
	if l == nil {
		l = nopListener{}
	}
	g.listener = l
}

// Columns returns the grid width.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Size returns the number of cells.
func (g *Grid) Size() int { return g.columns * g.rows }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.columns && y >= 0 && y < g.rows
}

// At returns the cell at (x,y), or false when out of range.
func (g *Grid) At(x, y int) (*Cell, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g.cells[x][y], true
}

// CellAt is At for a Coord.
func (g *Grid) CellAt(c Coord) (*Cell, bool) {
	return g.At(c.X, c.Y)
}

// Cells returns every cell in x-major order (all of column 0, then column 1, ...).
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, g.Size())
	for x := 0; x < g.columns; x++ {
		for y := 0; y < g.rows; y++ {
			out = append(out, &g.cells[x][y])
		}
	}
	return out
}

// CellsByType returns all cells of type t in x-major order.
func (g *Grid) CellsByType(t CellType) []*Cell {
	var out []*Cell
	for x := 0; x < g.columns; x++ {
		for y := 0; y < g.rows; y++ {
			if g.cells[x][y].typ == t {
				out = append(out, &g.cells[x][y])
			}
		}
	}
	return out
}

// StartNode returns the Start cell, if present.
func (g *Grid) StartNode() (*Cell, bool) {
	return g.find(Start)
}

// EndNode returns the Goal cell, if present.
func (g *Grid) EndNode() (*Cell, bool) {
	return g.find(Goal)
}

func (g *Grid) find(t CellType) (*Cell, bool) {
	for x := 0; x < g.columns; x++ {
		for y := 0; y < g.rows; y++ {
			if g.cells[x][y].typ == t {
				return &g.cells[x][y], true
			}
		}
	}
	return nil, false
}

// UpdateNode sets the type of (x,y). Assigning Start or Goal first turns the
// current holder of that type into Empty, so each marker stays unique.
// Out-of-range coordinates are ignored and reported as false.
func (g *Grid) UpdateNode(x, y int, t CellType) bool {
	target, ok := g.At(x, y)
	if !ok {
		return false
	}
	if t == Start || t == Goal {
		if holder, found := g.find(t); found && holder != target {
			g.SetType(holder, Empty)
		}
	}
	g.SetType(target, t)
	return true
}

// UpdateAllNodes forces every cell to type t. Marker uniqueness is not
// maintained; callers re-place Start and Goal afterwards.
func (g *Grid) UpdateAllNodes(t CellType) {
	for x := 0; x < g.columns; x++ {
		for y := 0; y < g.rows; y++ {
			g.SetType(&g.cells[x][y], t)
		}
	}
}

// ResetAllNodes resets scores, predecessors and state of every cell.
// Types are preserved.
func (g *Grid) ResetAllNodes() {
	for x := 0; x < g.columns; x++ {
		for y := 0; y < g.rows; y++ {
			c := &g.cells[x][y]
			was := c.state
			c.Reset()
			if was != Unvisited {
				g.listener.CellStateChanged(c.Coord(), Unvisited)
			}
		}
	}
}

// RandomizeStart moves Start onto a randomly chosen Empty cell.
// It returns false when no Empty cell exists.
func (g *Grid) RandomizeStart() bool {
	return g.randomize(Start)
}

// RandomizeEnd moves Goal onto a randomly chosen Empty cell.
// It returns false when no Empty cell exists.
func (g *Grid) RandomizeEnd() bool {
	return g.randomize(Goal)
}

func (g *Grid) randomize(t CellType) bool {
	empties := g.CellsByType(Empty)
	if len(empties) == 0 {
		return false
	}
	chosen := empties[g.rng.Intn(len(empties))]
	return g.UpdateNode(chosen.x, chosen.y, t)
}

// SetType changes the type of c and notifies the listener when it differs.
// Unlike UpdateNode it does not maintain marker uniqueness.
func (g *Grid) SetType(c *Cell, t CellType) {
	if c == nil || c.typ == t {
		return
	}
	c.typ = t
	g.listener.CellTypeChanged(c.Coord(), t)
}

// SetState moves c to state s and notifies the listener. Moves that would
// break the per-run ordering (anything out of Visited, Queued back to
// Unvisited) are refused and reported as false; use Reset for those.
func (g *Grid) SetState(c *Cell, s CellState) bool {
	if c == nil {
		return false
	}
	if c.state == s {
		return true
	}
	if s < c.state {
		return false
	}
	c.state = s
	g.listener.CellStateChanged(c.Coord(), s)
	return true
}

// Visit marks c Visited.
func (g *Grid) Visit(c *Cell) bool {
	return g.SetState(c, Visited)
}

// Connect opens the passage between source and a cell exactly two steps away
// along an axis or diagonal. The intermediate cell, if it is a Wall, is marked
// Visited and turned Empty. It reports whether a wall was removed.
func (g *Grid) Connect(source, neighbor *Cell) bool {
	if source == nil || neighbor == nil {
		return false
	}
	dx, dy := neighbor.x-source.x, neighbor.y-source.y
	if !twoOrZero(dx) || !twoOrZero(dy) || (dx == 0 && dy == 0) {
		return false
	}
	mid, ok := g.At(source.x+sign(dx), source.y+sign(dy))
	if !ok || mid.typ != Wall {
		return false
	}
	g.Visit(mid)
	g.SetType(mid, Empty)
	return true
}

func twoOrZero(d int) bool {
	return d == 0 || d == 2 || d == -2
}

func sign(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}
