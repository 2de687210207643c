package grid

import "fmt"

// Direction names one of the eight compass moves. North is "top" (y-1).
// The numeric order is the neighbor order returned by Neighbors and is the
// tie-break order every search relies on.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// directionOffsets holds (dx, dy) per Direction, clockwise from top.
var directionOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Offset returns the unit (dx, dy) of the direction.
func (d Direction) Offset() (dx, dy int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

// Diagonal reports whether d is one of the four diagonal moves.
func (d Direction) Diagonal() bool {
	return d%2 == 1
}

// String returns the compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case NorthEast:
		return "northeast"
	case East:
		return "east"
	case SouthEast:
		return "southeast"
	case South:
		return "south"
	case SouthWest:
		return "southwest"
	case West:
		return "west"
	case NorthWest:
		return "northwest"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionOf returns the compass direction from src towards dst by the sign
// of each axis delta. It returns false when src and dst coincide.
func DirectionOf(src, dst Coord) (Direction, bool) {
	sx, sy := sign(dst.X-src.X), sign(dst.Y-src.Y)
	if sx == 0 && sy == 0 {
		return 0, false
	}
	for d, o := range directionOffsets {
		if o[0] == sx && o[1] == sy {
			return Direction(d), true
		}
	}
	return 0, false
}

// Neighbors returns the cells step positions away from c in the fixed order
// top, top-right, right, bottom-right, bottom, bottom-left, left, top-left.
// Diagonals are included only when includeDiagonal is set.
//
// With hasBoundaries, positions outside the grid are omitted. Without it the
// grid is a torus: coordinates wrap and every direction yields a cell, which
// on very small grids may be c itself or a repeat.
// A step below 1 is treated as 1.
//
// Complexity: O(1).
func (g *Grid) Neighbors(c *Cell, hasBoundaries, includeDiagonal bool, step int) []*Cell {
	if c == nil || g.Size() == 0 {
		return nil
	}
	if step < 1 {
		step = 1
	}
	out := make([]*Cell, 0, 8)
	for d, o := range directionOffsets {
		if !includeDiagonal && Direction(d).Diagonal() {
			continue
		}
		if n, ok := g.neighbor(c.x+o[0]*step, c.y+o[1]*step, hasBoundaries); ok {
			out = append(out, n)
		}
	}
	return out
}

func (g *Grid) neighbor(x, y int, hasBoundaries bool) (*Cell, bool) {
	if hasBoundaries {
		return g.At(x, y)
	}
	x = ((x % g.columns) + g.columns) % g.columns
	y = ((y % g.rows) + g.rows) % g.rows
	return &g.cells[x][y], true
}
