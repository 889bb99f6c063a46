// Package glyphmosaic converts raster images into true-color character
// mosaics built from ASCII density glyphs, emoji, or a brightness-driven mix
// of both, and exports them as raster images, HTML, plain text or ANSI.
//
// The pipeline is: BuildGrid samples one color per output cell, a Renderer
// draws the selected glyph for every cell into an Artifact, and an Exporter
// serializes the Artifact. Exporters re-sample the rendered raster instead
// of keeping the grid around, see SampleArtifact.
package glyphmosaic

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/wbrown/glyphmosaic/imageutil"
)

var (
	// ErrNoImageLoaded is returned when generating or saving before a
	// source image (or artifact) exists.
	ErrNoImageLoaded = errors.New("no image loaded")

	// ErrInvalidParameters is returned for non-positive dimensions or cell
	// sizes and for unknown modes.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrUnsupportedExport is returned when an export cannot represent the
	// artifact, such as plain text for an emoji-only mosaic.
	ErrUnsupportedExport = errors.New("unsupported export")

	// ErrIOFailure wraps file read and write failures.
	ErrIOFailure = errors.New("i/o failure")

	// ErrFontUnavailable is never returned as a failure. It marks the
	// warning produced when rendering falls back to the built-in font.
	ErrFontUnavailable = errors.New("font unavailable")
)

// Mode selects how glyphs are chosen for each cell.
type Mode int

const (
	ModeHybrid Mode = iota
	ModeASCII
	ModeEmoji
)

func (m Mode) String() string {
	switch m {
	case ModeHybrid:
		return "hybrid"
	case ModeASCII:
		return "ascii"
	case ModeEmoji:
		return "emoji"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "ascii", "emoji" or "hybrid" (case insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hybrid":
		return ModeHybrid, nil
	case "ascii":
		return ModeASCII, nil
	case "emoji":
		return ModeEmoji, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidParameters, s)
}

// Params are the parameters of a single generation request.
type Params struct {
	// Width is the number of output columns.
	Width int
	// Height is the number of output rows. Zero derives it from Width,
	// see Dimensions.
	Height int
	// CellSize is the edge length of one glyph cell in pixels.
	CellSize int
	Mode     Mode
	// KeepAspect derives Height from the source aspect ratio when Height
	// is zero. Otherwise the mosaic is square.
	KeepAspect bool
	// Tone is applied to the source before it is resampled.
	Tone imageutil.Tone
}

// Validate checks the parameters that do not depend on a source image.
func (p Params) Validate() error {
	if p.Width < 1 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidParameters, p.Width)
	}
	if p.Height < 0 {
		return fmt.Errorf("%w: height must not be negative, got %d", ErrInvalidParameters, p.Height)
	}
	if p.CellSize < 1 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidParameters, p.CellSize)
	}
	switch p.Mode {
	case ModeHybrid, ModeASCII, ModeEmoji:
	default:
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidParameters, p.Mode)
	}
	if err := p.Tone.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}
	return nil
}

// Dimensions returns the grid size for a source with the given bounds.
// An explicit Height wins; otherwise KeepAspect gives
// round(Width * srcHeight / srcWidth) and the default is a square grid.
func (p Params) Dimensions(src image.Rectangle) (cols, rows int, err error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}
	if src.Empty() {
		return 0, 0, fmt.Errorf("%w: source image is empty", ErrInvalidParameters)
	}

	switch {
	case p.Height > 0:
		rows = p.Height
	case p.KeepAspect:
		rows = imageutil.ScaledHeight(p.Width, src.Dx(), src.Dy())
	default:
		rows = p.Width
	}
	return p.Width, rows, nil
}
