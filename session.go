package glyphmosaic

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/wbrown/glyphmosaic/imageutil"
)

// Result is what a successful Generate produces.
type Result struct {
	Artifact *Artifact
	Font     FontResult
	// Warnings are non fatal problems, such as ErrFontUnavailable.
	Warnings []error
}

// Session holds the current source image and the last artifact generated
// from it. Each successful Load replaces the source and each successful
// Generate replaces the artifact; failed calls leave both untouched.
// A Session is not safe for concurrent use.
type Session struct {
	fontCandidates []string
	fontDirs       []string
	background     RGB
	logger         *slog.Logger

	font     *FontResult
	source   *imageutil.RGBAImage
	artifact *Artifact
}

// SessionOption is a functional option for configuring a Session.
type SessionOption func(*Session)

// NewSession creates a Session. Default values: DefaultFontCandidates,
// DefaultFontDirs, a white background and a discarding logger.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		fontCandidates: DefaultFontCandidates,
		background:     DefaultBackground,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fontDirs == nil {
		s.fontDirs = DefaultFontDirs()
	}
	return s
}

// WithFontCandidates sets the fonts tried, in order, on the first Generate.
func WithFontCandidates(candidates ...string) SessionOption {
	return func(s *Session) {
		if len(candidates) > 0 {
			s.fontCandidates = candidates
		}
	}
}

// WithFontDirs sets the directories searched for fonts given by name.
func WithFontDirs(dirs ...string) SessionOption {
	return func(s *Session) {
		s.fontDirs = dirs
	}
}

// WithSessionBackground sets the background color of rendered artifacts.
func WithSessionBackground(c RGB) SessionOption {
	return func(s *Session) {
		s.background = c
	}
}

// WithSessionLogger sets the logger used by the session and its renderer.
func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Load decodes the image at path and makes it the current source.
func (s *Session) Load(path string) error {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return fmt.Errorf("%w: load %s: %w", ErrIOFailure, path, err)
	}
	s.source = img
	s.logger.Info("loaded source image", "path", path, "width", img.Width(), "height", img.Height())
	return nil
}

// SetSource makes img the current source. The image is copied.
func (s *Session) SetSource(img image.Image) {
	if img == nil {
		s.source = nil
		return
	}
	s.source = imageutil.RGBAImageFromImage(img)
}

// HasSource reports whether a source image is loaded.
func (s *Session) HasSource() bool {
	return s.source != nil
}

// Artifact returns the last generated artifact, or nil.
func (s *Session) Artifact() *Artifact {
	return s.artifact
}

// SetArtifact replaces the current artifact, for re-exporting a raster
// rendered earlier.
func (s *Session) SetArtifact(a *Artifact) {
	s.artifact = a
}

// Font resolves the session font once and returns the cached result on
// later calls.
func (s *Session) Font() FontResult {
	if s.font == nil {
		res := ResolveFont(s.fontCandidates, s.fontDirs)
		if res.Fallback {
			s.logger.Warn("font fallback", "font", res.Name, "err", res.Warning)
		} else {
			s.logger.Debug("resolved font", "font", res.Name, "path", res.Path)
		}
		if len(res.Missing) > 0 {
			s.logger.Debug("font lacks glyphs", "font", res.Name, "missing", string(res.Missing))
		}
		s.font = &res
	}
	return *s.font
}

// Generate samples the current source with p, renders the mosaic and makes
// it the current artifact.
func (s *Session) Generate(p Params) (Result, error) {
	if s.source == nil {
		return Result{}, ErrNoImageLoaded
	}

	grid, err := BuildGrid(s.source, p)
	if err != nil {
		return Result{}, err
	}

	res := s.Font()
	r := NewRenderer(
		WithFontResult(res),
		WithBackground(s.background),
		WithLogger(s.logger),
	)
	art, err := r.Render(grid, p)
	if err != nil {
		return Result{}, err
	}

	s.artifact = art
	out := Result{Artifact: art, Font: res}
	if res.Warning != nil {
		out.Warnings = append(out.Warnings, res.Warning)
	}
	s.logger.Info("generated mosaic",
		"cols", grid.Cols, "rows", grid.Rows, "mode", p.Mode,
		"width_px", art.Image.Width(), "height_px", art.Image.Height())
	return out, nil
}

// Save exports the current artifact to path, see Export.
func (s *Session) Save(path string) error {
	if s.artifact == nil {
		return ErrNoImageLoaded
	}
	if err := Export(s.artifact, path); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil {
		s.logger.Info("saved artifact", "path", path, "bytes", info.Size())
	}
	return nil
}
