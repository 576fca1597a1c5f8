// Package render turns boards into their presentation formats. Both
// renderers are pure functions over their inputs; neither holds any
// state between calls.
package render

import (
	"strings"

	"github.com/robherley/game-of-life/internal/life"
)

// TextOptions selects the glyphs of the textual format.
type TextOptions struct {
	Alive     byte
	Dead      byte
	Separator byte
}

// DefaultTextOptions is the canonical glyph set: '#' alive, '.' dead,
// newline-separated rows.
func DefaultTextOptions() TextOptions {
	return TextOptions{Alive: '#', Dead: '.', Separator: '\n'}
}

// Text renders the board as Height lines of Width glyphs each,
// joined by the separator. No separator follows the final line.
func Text(b *life.Board, opts TextOptions) string {
	var sb strings.Builder
	sb.Grow(b.Width*b.Height + b.Height)

	for y := 0; y < b.Height; y++ {
		if y > 0 {
			sb.WriteByte(opts.Separator)
		}
		for x := 0; x < b.Width; x++ {
			if b.Cells[y*b.Width+x] {
				sb.WriteByte(opts.Alive)
			} else {
				sb.WriteByte(opts.Dead)
			}
		}
	}

	return sb.String()
}
