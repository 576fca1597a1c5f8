// Package codec converts boards between their external encodings:
// the permissive human-facing text format (arbitrary alive/dead
// glyphs, arbitrary separator) and the compact compressed blob the
// store keeps on disk.
package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/robherley/game-of-life/internal/life"
)

var (
	// ErrEmptyBoard means the input contained no lines, or only
	// zero-width lines.
	ErrEmptyBoard = errors.New("board is empty")

	// ErrGlyphConflict means the alive, dead and separator glyphs
	// are not pairwise distinct, so the input cannot be tokenized
	// unambiguously.
	ErrGlyphConflict = errors.New("alive, dead and separator glyphs must be distinct")
)

// IrregularShapeError reports a line whose length differs from the
// board width established by the first line. Line is zero-based.
type IrregularShapeError struct {
	Line int
	Want int
	Got  int
}

func (e *IrregularShapeError) Error() string {
	return fmt.Sprintf("line %d has %d cells, want %d", e.Line, e.Got, e.Want)
}

// InvalidCellError reports a character outside the declared
// alive/dead glyph set. Line and Col are zero-based.
type InvalidCellError struct {
	Line int
	Col  int
	Char byte
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("invalid cell %q at line %d, column %d", e.Char, e.Line, e.Col)
}

// DecodeText parses a textual grid into a board. The input is split
// on sep into lines (empty lines are skipped, so a trailing separator
// is harmless); every line must have the same length, and every
// character must be exactly alive or dead.
func DecodeText(raw []byte, alive, dead, sep byte) (*life.Board, error) {
	if alive == dead || sep == alive || sep == dead {
		return nil, ErrGlyphConflict
	}

	var lines [][]byte
	for _, line := range bytes.Split(bytes.TrimSpace(raw), []byte{sep}) {
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyBoard
	}

	width := len(lines[0])
	board := life.NewBoard(width, len(lines))

	for y, line := range lines {
		if len(line) != width {
			return nil, &IrregularShapeError{Line: y, Want: width, Got: len(line)}
		}
		for x, c := range line {
			switch c {
			case alive:
				board.Cells[y*width+x] = true
			case dead:
				// stays dead
			default:
				return nil, &InvalidCellError{Line: y, Col: x, Char: c}
			}
		}
	}

	return board, nil
}
