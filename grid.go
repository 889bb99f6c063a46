package glyphmosaic

import (
	"fmt"
	"image"

	"github.com/wbrown/glyphmosaic/imageutil"
)

// Cell is one grid position and the color sampled for it.
type Cell struct {
	Col, Row int
	Color    RGB
}

// Brightness returns the perceived luminance of the cell color in [0, 1].
func (c Cell) Brightness() float64 {
	return c.Color.Brightness()
}

// Assignment is the glyph chosen for a cell. The color is always the cell's
// sampled color.
type Assignment struct {
	Cell
	Glyph string
}

// Grid holds one sampled color per output cell in row-major order.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

func newGrid(cols, rows int) *Grid {
	g := &Grid{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.Cells[row*cols+col] = Cell{Col: col, Row: row}
		}
	}
	return g
}

// At returns the cell at (col, row).
func (g *Grid) At(col, row int) Cell {
	return g.Cells[row*g.Cols+col]
}

// Assign maps every cell to its glyph, in row-major order.
func (g *Grid) Assign(mode Mode) []Assignment {
	out := make([]Assignment, len(g.Cells))
	for i, c := range g.Cells {
		out[i] = Assignment{Cell: c, Glyph: SelectGlyph(c.Color, mode)}
	}
	return out
}

// BuildGrid resizes src to one pixel per output cell and records each
// pixel as the color of its cell. Tone adjustments in p are applied first.
func BuildGrid(src image.Image, p Params) (*Grid, error) {
	if src == nil {
		return nil, ErrNoImageLoaded
	}
	cols, rows, err := p.Dimensions(src.Bounds())
	if err != nil {
		return nil, err
	}

	rgba, ok := src.(*imageutil.RGBAImage)
	if !ok {
		rgba = imageutil.RGBAImageFromImage(src)
	}
	small := imageutil.PrepareForMosaic(rgba, cols, rows, p.Tone, imageutil.InterpolationLanczos)

	g := newGrid(cols, rows)
	for i := range g.Cells {
		c := &g.Cells[i]
		c.Color = small.GetRGB(c.Col, c.Row)
	}
	return g, nil
}

// SampleArtifact rebuilds the grid of a rendered artifact from the anchor
// pixel of every cell, see Artifact.Anchor.
func SampleArtifact(a *Artifact) (*Grid, error) {
	if a == nil || a.Image == nil {
		return nil, ErrNoImageLoaded
	}
	if a.Params.CellSize < 1 {
		return nil, fmt.Errorf("%w: cell size must be positive, got %d",
			ErrInvalidParameters, a.Params.CellSize)
	}

	g := newGrid(a.Cols(), a.Rows())
	for i := range g.Cells {
		c := &g.Cells[i]
		x, y := a.Anchor(c.Col, c.Row)
		c.Color = a.Image.GetRGB(x, y)
	}
	return g, nil
}
