package life

// Offsets of the up-to-8 neighbors of a cell, clockwise from NW.
var neighborOffsets = [8][2]int{
	{-1, -1}, // NW
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
}

// Step advances the board by exactly one generation and returns the
// next board together with the number of cells that changed state.
//
// The rule set is Conway's: a cell is alive in the next generation if
// it is alive with 2 or 3 live neighbors, or dead with exactly 3.
// Edges are hard: coordinates outside the board never count as alive,
// so the board is not toroidal.
//
// Step never mutates its input. An all-dead board is a fixed point:
// the result is all-dead with a delta of 0.
func Step(b *Board) (*Board, uint64) {
	next := NewBoard(b.Width, b.Height)
	var delta uint64

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			alive := b.Cells[y*b.Width+x]
			n := liveNeighbors(b, x, y)

			cell := (alive && n == 2) || n == 3
			if cell {
				next.Cells[y*b.Width+x] = true
			}
			if cell != alive {
				delta++
			}
		}
	}

	return next, delta
}

func liveNeighbors(b *Board, x, y int) int {
	n := 0
	for _, off := range neighborOffsets {
		if b.Get(x+off[0], y+off[1]) {
			n++
		}
	}
	return n
}
