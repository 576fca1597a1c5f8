// Package store persists games by name. The engine itself is
// stateless; everything durable goes through the Store interface.
package store

import (
	"context"
	"errors"

	"github.com/robherley/game-of-life/internal/game"
)

var (
	// ErrNotFound means no game exists under the requested name.
	ErrNotFound = errors.New("game not found")

	// ErrExists means a Create collided with an existing name.
	ErrExists = errors.New("game already exists")
)

// Store is a durable name -> game mapping with last-write-wins
// semantics per name.
//
// Store implementations do not serialize read-modify-write sequences:
// a caller doing Find, then stepping, then Update for the same name
// must hold its own per-name lock across the sequence to avoid lost
// updates.
type Store interface {
	// Find loads the game stored under name, or ErrNotFound.
	Find(ctx context.Context, name string) (*game.Game, error)

	// Create stores a new game under name, or ErrExists.
	Create(ctx context.Context, name string, g *game.Game) error

	// Update overwrites the game stored under name, or ErrNotFound.
	Update(ctx context.Context, name string, g *game.Game) error

	Close() error
}
