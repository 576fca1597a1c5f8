package store

import (
	"context"
	"errors"
	"testing"

	"github.com/robherley/game-of-life/internal/game"
	"github.com/robherley/game-of-life/internal/life"
)

func testStore(t *testing.T) *SQLite {
	t.Helper()

	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	if err := s.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	return s
}

func testGame(t *testing.T) *game.Game {
	t.Helper()

	b := life.NewBoard(5, 5)
	b.Set(1, 2, true)
	b.Set(2, 2, true)
	b.Set(3, 2, true)
	return game.New(b)
}

func TestSQLite_CreateAndFind(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	g := testGame(t)

	if err := s.Create(ctx, "blinker", g); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := s.Find(ctx, "blinker")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if !got.Board.Equal(g.Board) {
		t.Error("stored board does not match")
	}
	if got.Generation != 0 || got.Delta != 0 {
		t.Errorf("fresh game has generation %d delta %d", got.Generation, got.Delta)
	}
}

func TestSQLite_FindNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Find(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSQLite_CreateConflict(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Create(ctx, "dup", testGame(t)); err != nil {
		t.Fatal(err)
	}
	err := s.Create(ctx, "dup", testGame(t))
	if !errors.Is(err, ErrExists) {
		t.Errorf("error = %v, want ErrExists", err)
	}
}

func TestSQLite_Update(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	g := testGame(t)
	if err := s.Create(ctx, "blinker", g); err != nil {
		t.Fatal(err)
	}

	g.Next()
	if err := s.Update(ctx, "blinker", g); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := s.Find(ctx, "blinker")
	if err != nil {
		t.Fatal(err)
	}
	if got.Generation != 1 {
		t.Errorf("Generation = %d, want 1", got.Generation)
	}
	if got.Delta != g.Delta {
		t.Errorf("Delta = %d, want %d", got.Delta, g.Delta)
	}
	if !got.Board.Equal(g.Board) {
		t.Error("updated board does not match")
	}
}

func TestSQLite_UpdateMissing(t *testing.T) {
	s := testStore(t)

	err := s.Update(context.Background(), "missing", testGame(t))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSQLite_LastWriteWins(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	g := testGame(t)
	if err := s.Create(ctx, "game", g); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		g.Next()
		if err := s.Update(ctx, "game", g); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Find(ctx, "game")
	if err != nil {
		t.Fatal(err)
	}
	if got.Generation != 3 {
		t.Errorf("Generation = %d, want 3", got.Generation)
	}
}
