package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// clearScreen moves the cursor home and clears an ANSI terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Frames redraws an ASCII picture of a grid after every search step.
type Frames struct {
	w      io.Writer
	g      *grid.Grid
	clear  bool
	frames int
}

// NewFrames draws g to w. With clear set every frame starts by clearing
// the terminal; otherwise frames are separated by a blank line.
func NewFrames(w io.Writer, g *grid.Grid, clear bool) *Frames {
	return &Frames{w: w, g: g, clear: clear}
}

// Step draws one frame. Its signature matches search.Hook.
func (f *Frames) Step(grid.Coord) error {
	return f.draw(f.g.Render(true))
}

// Path draws the grid with path overlaid. Its signature matches search.PathHook.
func (f *Frames) Path(path []grid.Coord) error {
	return f.draw(f.g.RenderPath(path))
}

// Options wires Step and Path into the visit, enqueue and path hooks.
func (f *Frames) Options() []search.Option {
	return []search.Option{
		search.WithOnVisit(f.Step),
		search.WithOnEnqueue(f.Step),
		search.WithOnPath(f.Path),
	}
}

// Count returns the number of frames drawn.
func (f *Frames) Count() int { return f.frames }

func (f *Frames) draw(pic string) error {
	prefix := "\n"
	if f.clear {
		prefix = clearScreen
	}
	if _, err := fmt.Fprint(f.w, prefix, pic); err != nil {
		return fmt.Errorf("render: frame %d: %w", f.frames+1, err)
	}
	f.frames++
	return nil
}
