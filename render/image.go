package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gridwalk/grid"
)

// Cell colors.
var (
	ColorEmpty   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorWall    = color.RGBA{R: 52, G: 58, B: 64, A: 255}
	ColorStart   = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	ColorGoal    = color.RGBA{R: 220, G: 53, B: 69, A: 255}
	ColorQueued  = color.RGBA{R: 180, G: 222, B: 255, A: 255}
	ColorVisited = color.RGBA{R: 100, G: 120, B: 255, A: 255}
	ColorPath    = color.RGBA{R: 255, G: 200, B: 40, A: 255}
)

// Image presents a grid as an image.Image with one cellSize×cellSize square
// per cell. It reads the live grid, so drawing it later shows later state.
type Image struct {
	g    *grid.Grid
	path map[grid.Coord]struct{}
	cell int
}

// NewImage wraps g. Cells on path are drawn in ColorPath unless they hold
// Start or Goal. A cellSize below 1 is treated as 1.
func NewImage(g *grid.Grid, path []grid.Coord, cellSize int) *Image {
	if cellSize < 1 {
		cellSize = 1
	}
	on := make(map[grid.Coord]struct{}, len(path))
	for _, c := range path {
		on[c] = struct{}{}
	}
	return &Image{g: g, path: on, cell: cellSize}
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	if m.g == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, m.g.Columns()*m.cell, m.g.Rows()*m.cell)
}

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	if m.g == nil {
		return color.Transparent
	}
	c, ok := m.g.At(x/m.cell, y/m.cell)
	if !ok || x < 0 || y < 0 {
		return color.Transparent
	}
	return m.colorOf(c)
}

func (m *Image) colorOf(c *grid.Cell) color.RGBA {
	switch c.Type() {
	case grid.Wall:
		return ColorWall
	case grid.Start:
		return ColorStart
	case grid.Goal:
		return ColorGoal
	}
	if _, ok := m.path[c.Coord()]; ok {
		return ColorPath
	}
	switch c.State() {
	case grid.Queued:
		return ColorQueued
	case grid.Visited:
		return ColorVisited
	}
	return ColorEmpty
}

// WritePNG rasterizes g (see NewImage), surrounds it with a white border of
// border pixels when border > 0, and encodes it as PNG to w.
func WritePNG(w io.Writer, g *grid.Grid, path []grid.Coord, cellSize, border int) error {
	if g == nil || g.Size() == 0 {
		return fmt.Errorf("render: nothing to draw")
	}
	rgba := image_utils.ToRGBA(NewImage(g, path, cellSize))
	var pic image.Image = rgba
	if border > 0 {
		pic = image_utils.AddImageBorder(rgba, color.White, border)
	}
	if err := png.Encode(w, pic); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
