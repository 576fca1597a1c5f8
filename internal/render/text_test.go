package render

import (
	"strings"
	"testing"

	"github.com/robherley/game-of-life/internal/codec"
	"github.com/robherley/game-of-life/internal/life"
)

func TestText(t *testing.T) {
	b := life.NewBoard(3, 2)
	b.Set(0, 0, true)
	b.Set(2, 1, true)

	tests := []struct {
		name string
		opts TextOptions
		want string
	}{
		{
			name: "default glyphs",
			opts: DefaultTextOptions(),
			want: "#..\n..#",
		},
		{
			name: "custom glyphs",
			opts: TextOptions{Alive: 'o', Dead: ' ', Separator: '|'},
			want: "o  |  o",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(b, tt.opts); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText_NoTrailingSeparator(t *testing.T) {
	b := life.NewBoard(2, 3)
	out := Text(b, DefaultTextOptions())

	if strings.HasSuffix(out, "\n") {
		t.Errorf("output ends with a separator: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("separator count = %d, want 2", got)
	}
}

// Decoding a well-formed text board and rendering it with the same
// glyphs reproduces the input.
func TestText_RoundTripWithDecode(t *testing.T) {
	tests := []struct {
		name             string
		raw              string
		alive, dead, sep byte
	}{
		{"default glyphs", ".#.\n..#\n###", '#', '.', '\n'},
		{"custom glyphs", "ox|xo|oo", 'o', 'x', '|'},
		{"single row", "##..##", '#', '.', '\n'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := codec.DecodeText([]byte(tt.raw), tt.alive, tt.dead, tt.sep)
			if err != nil {
				t.Fatal(err)
			}

			opts := TextOptions{Alive: tt.alive, Dead: tt.dead, Separator: tt.sep}
			if got := Text(b, opts); got != tt.raw {
				t.Errorf("round trip = %q, want %q", got, tt.raw)
			}
		})
	}
}
