// Package grid defines cell types, traversal states, sentinel errors and
// the listener contract used by the grid subpackage of
// github.com/katalvlaran/gridwalk.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for grid construction from textual layouts.
var (
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all layout rows must have the same length")
	// ErrUnknownGlyph indicates a layout character that maps to no cell type.
	ErrUnknownGlyph = errors.New("grid: unknown layout glyph")
	// ErrDuplicateMarker indicates more than one Start or Goal in a layout.
	ErrDuplicateMarker = errors.New("grid: start and goal must be unique")
	// ErrUnknownCellType indicates a cell type name that cannot be parsed.
	ErrUnknownCellType = errors.New("grid: unknown cell type")
)

// CellType is the user-editable kind of a cell.
type CellType int

const (
	// Empty is an open cell.
	Empty CellType = iota
	// Wall blocks movement unless a search is configured to traverse walls.
	Wall
	// Start is the unique origin of path searches and maze carving.
	Start
	// Goal is the unique target of path searches.
	Goal
)

// String returns the lower-case name used by configuration files.
func (t CellType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "end"
	}
	return fmt.Sprintf("CellType(%d)", int(t))
}

// ParseCellType maps a case-insensitive name to a CellType.
// Both "end" and "goal" name the Goal type.
func ParseCellType(s string) (CellType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty":
		return Empty, nil
	case "wall":
		return Wall, nil
	case "start":
		return Start, nil
	case "end", "goal":
		return Goal, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownCellType, s)
}

// CellState is the per-run traversal state of a cell.
//
// Legal transitions within one run are Unvisited→Queued→Visited and
// Unvisited→Visited. Only a reset returns a cell to Unvisited.
type CellState int

const (
	// Unvisited cells have not been reached by the current run.
	Unvisited CellState = iota
	// Queued cells sit in a frontier waiting to be expanded.
	Queued
	// Visited cells have been expanded and are never expanded again.
	Visited
)

// String returns the lower-case state name.
func (s CellState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Queued:
		return "queued"
	case Visited:
		return "visited"
	}
	return fmt.Sprintf("CellState(%d)", int(s))
}

// Coord addresses a cell by column (X) and row (Y). Y grows downward.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Cell is a single grid position. Coordinates are fixed at creation.
// Type and State are changed through the owning Grid so that listeners
// observe every change; the search scratch fields are plain data.
type Cell struct {
	x, y  int
	typ   CellType
	state CellState

	// G is the cost from Start (A*).
	G float64
	// H is the heuristic estimate to Goal (A*).
	H float64
	// F is G+H (A*).
	F float64
	// Distance is the hop count from the origin (BFS, Dijkstra).
	Distance float64

	prev    Coord
	hasPrev bool
}

func newCell(x, y int) Cell {
	c := Cell{x: x, y: y}
	c.Reset()
	return c
}

// X returns the column of the cell.
func (c *Cell) X() int { return c.x }

// Y returns the row of the cell.
func (c *Cell) Y() int { return c.y }

// Coord returns the cell position.
func (c *Cell) Coord() Coord { return Coord{X: c.x, Y: c.y} }

// Type returns the cell type.
func (c *Cell) Type() CellType { return c.typ }

// State returns the traversal state.
func (c *Cell) State() CellState { return c.state }

// Previous returns the predecessor on the best-known path, if any.
func (c *Cell) Previous() (Coord, bool) { return c.prev, c.hasPrev }

// SetPrevious records p as the predecessor of c.
func (c *Cell) SetPrevious(p Coord) {
	c.prev = p
	c.hasPrev = true
}

// ClearPrevious drops the predecessor link.
func (c *Cell) ClearPrevious() {
	c.prev = Coord{}
	c.hasPrev = false
}

// Reset restores all scores to +Inf, clears the predecessor and marks the
// cell Unvisited. The type is left untouched.
func (c *Cell) Reset() {
	inf := math.Inf(1)
	c.G, c.H, c.F, c.Distance = inf, inf, inf, inf
	c.ClearPrevious()
	c.state = Unvisited
}

// Listener receives grid change notifications. Implementations are called
// synchronously from the goroutine that mutates the grid.
type Listener interface {
	CellStateChanged(c Coord, s CellState)
	CellTypeChanged(c Coord, t CellType)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnState func(c Coord, s CellState)
	OnType  func(c Coord, t CellType)
}

// CellStateChanged implements Listener.
func (l ListenerFuncs) CellStateChanged(c Coord, s CellState) {
	if l.OnState != nil {
		l.OnState(c, s)
	}
}

// CellTypeChanged implements Listener.
func (l ListenerFuncs) CellTypeChanged(c Coord, t CellType) {
	if l.OnType != nil {
		l.OnType(c, t)
	}
}

type nopListener struct{}

func (nopListener) CellStateChanged(Coord, CellState) {}
func (nopListener) CellTypeChanged(Coord, CellType)   {}
