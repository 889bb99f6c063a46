package glyphmosaic

import (
	"fmt"
	"io"
	"strings"
)

// TextExporter writes one line per row and one ASCII ramp character per
// cell, chosen from brightness alone. Rows are separated by a newline with
// none after the last row. Emoji-only mosaics cannot be exported as text.
type TextExporter struct{}

func (TextExporter) Export(w io.Writer, a *Artifact) error {
	if a != nil && a.Params.Mode == ModeEmoji {
		return fmt.Errorf("%w: emoji mosaics cannot be saved as plain text", ErrUnsupportedExport)
	}
	g, err := SampleArtifact(a)
	if err != nil {
		return err
	}

	lines := make([]string, g.Rows)
	line := make([]byte, g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			line[col] = ASCIIGlyph(g.At(col, row).Brightness())
		}
		lines[row] = string(line)
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}
