package glyphmosaic

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/glyphmosaic/imageutil"
)

// DefaultBackground is the color of pixels no glyph covers.
var DefaultBackground = RGB{R: 255, G: 255, B: 255}

// Renderer draws glyph grids into artifacts. A Renderer holds no state
// between calls besides its configuration, so rendering the same grid
// twice yields identical rasters.
type Renderer struct {
	// Configuration options
	Background RGB
	Hinting    font.Hinting

	font     *truetype.Font
	fontName string
	logger   *slog.Logger
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: Background=white, Hinting=font.HintingFull, font=Go Mono.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Background: DefaultBackground,
		Hinting:    font.HintingFull,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	if r.font == nil {
		r.font = fallbackFont()
		r.fontName = FallbackFontName
	}
	return r
}

// WithFont sets the TrueType font glyphs are drawn with.
func WithFont(f *truetype.Font, name string) RendererOption {
	return func(r *Renderer) {
		r.font = f
		r.fontName = name
	}
}

// WithFontResult uses the font picked by ResolveFont.
func WithFontResult(res FontResult) RendererOption {
	return WithFont(res.Font, res.Name)
}

// WithBackground sets the background color of the raster.
func WithBackground(c RGB) RendererOption {
	return func(r *Renderer) {
		r.Background = c
	}
}

// WithHinting sets the hinting used by the font face.
func WithHinting(h font.Hinting) RendererOption {
	return func(r *Renderer) {
		r.Hinting = h
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// FontName returns the name of the font glyphs are drawn with.
func (r *Renderer) FontName() string {
	return r.fontName
}

// Render draws every cell of g at (col*CellSize, row*CellSize) in the cell's
// exact color, on a background raster of Cols*CellSize by Rows*CellSize.
// Glyphs are clipped to their cell. After drawing, the anchor pixel of each
// cell is set to the cell color so that SampleArtifact recovers the grid.
func (r *Renderer) Render(g *Grid, p Params) (*Artifact, error) {
	if g == nil {
		return nil, ErrNoImageLoaded
	}
	if g.Cols < 1 || g.Rows < 1 || len(g.Cells) != g.Cols*g.Rows {
		return nil, fmt.Errorf("%w: grid is %dx%d with %d cells",
			ErrInvalidParameters, g.Cols, g.Rows, len(g.Cells))
	}
	p.Width, p.Height = g.Cols, g.Rows
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := p.CellSize
	img := imageutil.NewRGBAImage(g.Cols*s, g.Rows*s)
	img.Fill(r.Background)

	face := truetype.NewFace(r.font, &truetype.Options{
		Size:    float64(s),
		DPI:     72,
		Hinting: r.Hinting,
	})
	defer face.Close()

	// Baseline sits one ascent below the top of the cell.
	ascent := face.Metrics().Ascent
	d := &font.Drawer{Face: face}

	emoji := 0
	for _, a := range g.Assign(p.Mode) {
		cell := image.Rect(a.Col*s, a.Row*s, (a.Col+1)*s, (a.Row+1)*s)
		d.Dst = img.SubImage(cell).(*image.RGBA)
		d.Src = image.NewUniform(a.Color.ToColor())
		d.Dot = fixed.Point26_6{X: fixed.I(cell.Min.X), Y: fixed.I(cell.Min.Y) + ascent}
		d.DrawString(string(glyphRunes(a.Glyph)))
		if len(a.Glyph) > 1 {
			emoji++
		}
	}

	art := &Artifact{Image: img, Params: p}
	for _, c := range g.Cells {
		x, y := art.Anchor(c.Col, c.Row)
		img.SetRGB(x, y, c.Color)
	}

	r.logger.Debug("rendered mosaic",
		"cols", g.Cols, "rows", g.Rows, "cell_size", s,
		"mode", p.Mode, "emoji_cells", emoji, "font", r.fontName)
	return art, nil
}
