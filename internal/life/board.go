package life

// Board is a fixed-size rectangular grid of binary cell states.
// Cells live in a flat row-major buffer: index = y*Width + x.
// The invariant len(Cells) == Width*Height holds for every Board
// produced by this package.
type Board struct {
	Width  int
	Height int
	Cells  []bool
}

// NewBoard allocates an all-dead board of the given dimensions.
func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		Cells:  make([]bool, width*height),
	}
}

// Get reports whether the cell at (x, y) is alive.
// Coordinates outside the board read as dead, which is what the
// step rule relies on for its hard (non-wrapping) edges.
func (b *Board) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Cells[y*b.Width+x]
}

// Set writes the state of the cell at (x, y). Out-of-bounds writes
// are ignored.
func (b *Board) Set(x, y int, alive bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Cells[y*b.Width+x] = alive
}

// Population counts the alive cells.
func (b *Board) Population() int {
	n := 0
	for _, alive := range b.Cells {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy that shares no storage with b.
func (b *Board) Clone() *Board {
	cells := make([]bool, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Width: b.Width, Height: b.Height, Cells: cells}
}

// Equal reports whether two boards have the same dimensions and
// identical cell states.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Width != other.Width || b.Height != other.Height {
		return false
	}
	for i, alive := range b.Cells {
		if alive != other.Cells[i] {
			return false
		}
	}
	return true
}
