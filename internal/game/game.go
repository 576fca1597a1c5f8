package game

import "github.com/robherley/game-of-life/internal/life"

// Game couples a board with its simulation bookkeeping: how many
// generations have been applied and how many cells the most recent
// step changed. A freshly created game is at generation 0 with a
// delta of 0.
type Game struct {
	Board      *life.Board
	Generation uint64
	Delta      uint64
}

// New wraps a board as a generation-0 game.
func New(b *life.Board) *Game {
	return &Game{Board: b}
}

// Next advances the game by one generation. The previous board is
// replaced by a new value; callers holding a reference to the old
// board are unaffected.
func (g *Game) Next() {
	next, delta := life.Step(g.Board)
	g.Board = next
	g.Delta = delta
	g.Generation++
}

// Terminal reports whether the simulation has reached a fixed point:
// at least one step was taken and the last step changed nothing.
func (g *Game) Terminal() bool {
	return g.Generation != 0 && g.Delta == 0
}
