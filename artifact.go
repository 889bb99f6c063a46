package glyphmosaic

import (
	"fmt"
	"image"

	"github.com/wbrown/glyphmosaic/imageutil"
)

// Artifact is a rendered mosaic: a raster of Cols*CellSize by
// Rows*CellSize pixels and the parameters it was rendered with.
// Artifacts are never modified after they are produced.
type Artifact struct {
	Image  *imageutil.RGBAImage
	Params Params
}

// NewArtifact wraps a raster that was rendered earlier, for example one
// loaded back from disk, so it can be exported again. Only CellSize and
// Mode of p are used; the grid size is derived from the raster.
func NewArtifact(img image.Image, p Params) (*Artifact, error) {
	if img == nil {
		return nil, ErrNoImageLoaded
	}
	if p.CellSize < 1 {
		return nil, fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidParameters, p.CellSize)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: artifact image is empty", ErrInvalidParameters)
	}

	rgba, ok := img.(*imageutil.RGBAImage)
	if !ok {
		rgba = imageutil.RGBAImageFromImage(img)
	}
	a := &Artifact{Image: rgba, Params: p}
	a.Params.Width, a.Params.Height = a.Cols(), a.Rows()
	return a, nil
}

// Cols returns the number of cell columns, counting a partial cell.
func (a *Artifact) Cols() int {
	s := a.Params.CellSize
	return (a.Image.Width() + s - 1) / s
}

// Rows returns the number of cell rows, counting a partial cell.
func (a *Artifact) Rows() int {
	s := a.Params.CellSize
	return (a.Image.Height() + s - 1) / s
}

// Anchor returns the pixel that carries the exact color of cell (col, row):
// the center of the cell, or the upper left of the central 2x2 block when
// the cell size is even. Anchors of partial edge cells are clamped to the
// image.
func (a *Artifact) Anchor(col, row int) (x, y int) {
	s := a.Params.CellSize
	x = min(col*s+(s-1)/2, a.Image.Width()-1)
	y = min(row*s+(s-1)/2, a.Image.Height()-1)
	return x, y
}
