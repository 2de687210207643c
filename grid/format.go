package grid

import (
	"fmt"
	"strings"
)

// Layout glyphs shared by Parse and Render.
const (
	GlyphEmpty   = '.'
	GlyphWall    = '#'
	GlyphStart   = 'S'
	GlyphGoal    = 'G'
	GlyphQueued  = 'o'
	GlyphVisited = '*'
	GlyphPath    = '@'
)

// Parse builds a grid from a textual layout, one line per row:
//
//	S..#
//	.#..
//	...G
//
// Blank lines and surrounding whitespace are ignored. Unlike New, Parse is
// strict: it returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph or
// ErrDuplicateMarker for malformed input. A layout without S or G is legal.
func Parse(layout string, opts ...Option) (*Grid, error) {
	var lines []string
	for _, l := range strings.Split(layout, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	for _, l := range lines {
		if len(l) != w {
			return nil, ErrNonRectangular
		}
	}

	g := New(w, len(lines), append(opts, WithoutMarkers())...)
	var starts, goals int
	for y, l := range lines {
		for x := 0; x < w; x++ {
			c := &g.cells[x][y]
			switch l[x] {
			case GlyphEmpty:
				c.typ = Empty
			case GlyphWall:
				c.typ = Wall
			case GlyphStart:
				c.typ = Start
				starts++
			case GlyphGoal:
				c.typ = Goal
				goals++
			default:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrUnknownGlyph, l[x], x, y)
			}
		}
	}
	if starts > 1 || goals > 1 {
		return nil, ErrDuplicateMarker
	}
	return g, nil
}

// String renders cell types only, in the Parse format.
func (g *Grid) String() string {
	return g.Render(false)
}

// Render draws the grid one row per line. With withState, Empty cells show
// their traversal state (o queued, * visited).
func (g *Grid) Render(withState bool) string {
	return g.render(withState, nil)
}

// RenderPath draws the grid with state and overlays path on every non-marker cell.
func (g *Grid) RenderPath(path []Coord) string {
	on := make(map[Coord]struct{}, len(path))
	for _, c := range path {
		on[c] = struct{}{}
	}
	return g.render(true, on)
}

func (g *Grid) render(withState bool, path map[Coord]struct{}) string {
	var b strings.Builder
	b.Grow(g.Size() + g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.columns; x++ {
			c := &g.cells[x][y]
			if _, ok := path[c.Coord()]; ok && c.typ != Start && c.typ != Goal {
				b.WriteByte(GlyphPath)
				continue
			}
			b.WriteByte(glyph(c, withState))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(c *Cell, withState bool) byte {
	switch c.typ {
	case Wall:
		return GlyphWall
	case Start:
		return GlyphStart
	case Goal:
		return GlyphGoal
	}
	if withState {
		switch c.state {
		case Queued:
			return GlyphQueued
		case Visited:
			return GlyphVisited
		}
	}
	return GlyphEmpty
}
