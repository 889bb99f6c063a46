package glyphmosaic

import (
	"fmt"
	"html"
	"io"
	"strings"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Glyph Mosaic</title>
    <style>
        body {
            background: #222;
            color: white;
            font-family: monospace;
            font-size: %dpx;
            line-height: 1;
            white-space: pre;
            padding: 20px;
        }
    </style>
</head>
<body>
`

const htmlFooter = "</body>\n</html>"

// HTMLExporter writes a self-contained UTF-8 HTML page with one line per
// row and one colored span per cell.
type HTMLExporter struct{}

func (HTMLExporter) Export(w io.Writer, a *Artifact) error {
	g, cells, err := assignments(a)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, htmlHeader, a.Params.CellSize)
	for row := 0; row < g.Rows; row++ {
		for _, c := range cells[row*g.Cols : (row+1)*g.Cols] {
			fmt.Fprintf(&b, `<span style="color:%s">%s</span>`, c.Color.Hex(), html.EscapeString(c.Glyph))
		}
		b.WriteByte('\n')
	}
	b.WriteString(htmlFooter)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}
