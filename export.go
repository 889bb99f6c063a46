package glyphmosaic

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wbrown/glyphmosaic/imageutil"
)

// Exporter serializes an artifact. Exporters only see the rendered raster
// and its parameters; they re-derive every cell with SampleArtifact.
type Exporter interface {
	Export(w io.Writer, a *Artifact) error
}

// ExporterFor returns the exporter for the extension of path: .html/.htm,
// .txt, .ans, or any raster extension understood by imageutil.
func ExporterFor(path string) (Exporter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTMLExporter{}, nil
	case ".txt":
		return TextExporter{}, nil
	case ".ans":
		return ANSIExporter{}, nil
	}
	if format, ok := imageutil.FormatFromPath(path); ok {
		return RasterExporter{Format: format}, nil
	}
	return nil, fmt.Errorf("%w: unknown extension %q", ErrUnsupportedExport, filepath.Ext(path))
}

// Export writes a to path in the format chosen by the path's extension.
// The output is produced in memory first, so a failed export leaves no
// file behind.
func Export(a *Artifact, path string) error {
	if a == nil || a.Image == nil {
		return ErrNoImageLoaded
	}
	exp, err := ExporterFor(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := exp.Export(&buf, a); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// assignments re-samples a and maps each cell to its glyph.
func assignments(a *Artifact) (*Grid, []Assignment, error) {
	g, err := SampleArtifact(a)
	if err != nil {
		return nil, nil, err
	}
	return g, g.Assign(a.Params.Mode), nil
}

// RasterExporter writes the artifact raster unchanged.
type RasterExporter struct {
	Format imageutil.Format
}

func (e RasterExporter) Export(w io.Writer, a *Artifact) error {
	if a == nil || a.Image == nil {
		return ErrNoImageLoaded
	}
	if err := imageutil.Encode(w, a.Image.RGBA, e.Format); err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrIOFailure, e.Format, err)
	}
	return nil
}
