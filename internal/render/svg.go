package render

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/robherley/game-of-life/internal/life"
)

// SVGOptions selects the geometry and colors of the SVG format.
// Degenerate values (a zero cell size, say) produce degenerate but
// well-formed output; the renderer itself never fails.
type SVGOptions struct {
	CellSize    int
	StrokeWidth int
	StrokeColor string
	FillColor   string
}

// DefaultSVGOptions matches the service defaults: 20px cells with a
// 2px white stroke and black fill.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:    20,
		StrokeWidth: 2,
		StrokeColor: "white",
		FillColor:   "black",
	}
}

// Vertical space reserved under the grid for one line of monospace
// caption text.
const captionHeight = 20

// Colors arrive from the request layer, so they are escaped before
// being placed in attribute values.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// SVG renders the board as an SVG document: one rectangle per alive
// cell, emitted in row-major order so identical inputs yield
// byte-identical output, followed by a centered caption reporting the
// generation and the delta of the last step.
func SVG(b *life.Board, generation, delta uint64, opts SVGOptions) string {
	width := b.Width * opts.CellSize
	height := b.Height*opts.CellSize + captionHeight

	fill := attrEscaper.Replace(opts.FillColor)
	stroke := attrEscaper.Replace(opts.StrokeColor)
	cellAttrs := fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%d"`, fill, stroke, opts.StrokeWidth)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cells[y*b.Width+x] {
				canvas.Rect(x*opts.CellSize, y*opts.CellSize, opts.CellSize, opts.CellSize, cellAttrs)
			}
		}
	}

	caption := fmt.Sprintf("t = %d, Δ = %d", generation, delta)
	canvas.Text(width/2, height-5, caption,
		fmt.Sprintf(`font-family="monospace" font-size="12" fill="%s" dominant-baseline="central" text-anchor="middle"`, fill))

	canvas.End()
	return buf.String()
}
