package glyphmosaic

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
)

// ANSICellWidth is the number of terminal columns every cell occupies, so
// that ASCII and emoji cells line up.
const ANSICellWidth = 2

// ANSIExporter writes 24-bit color ANSI text, one line per row. Runs of
// cells with the same color share a single escape sequence.
type ANSIExporter struct{}

func (ANSIExporter) Export(w io.Writer, a *Artifact) error {
	g, cells, err := assignments(a)
	if err != nil {
		return err
	}

	var b strings.Builder
	re := lipgloss.NewRenderer(io.Discard)
	re.SetColorProfile(termenv.TrueColor)

	for row := 0; row < g.Rows; row++ {
		b.WriteString(renderANSIRow(re, cells[row*g.Cols:(row+1)*g.Cols]))
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// renderANSIRow styles one row, merging consecutive cells of equal color.
func renderANSIRow(re *lipgloss.Renderer, cells []Assignment) string {
	var out, run strings.Builder
	var current RGB

	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := re.NewStyle().Foreground(lipgloss.Color(current.Hex()))
		out.WriteString(style.Render(run.String()))
		run.Reset()
	}

	for i, c := range cells {
		if i > 0 && c.Color != current {
			flush()
		}
		current = c.Color
		run.WriteString(padCell(c.Glyph))
	}
	flush()
	return out.String()
}

// padCell right-pads glyph to ANSICellWidth columns. Widths follow uniseg,
// which counts a VS16 emoji presentation sequence such as "❤️" as two
// columns.
func padCell(glyph string) string {
	return glyph + strings.Repeat(" ", max(ANSICellWidth-uniseg.StringWidth(glyph), 0))
}
