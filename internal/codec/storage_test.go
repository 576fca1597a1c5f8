package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/robherley/game-of-life/internal/life"
)

func TestStorageRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"single cell", "#"},
		{"all dead", "...\n...\n..."},
		{"all alive", "###\n###"},
		{"glider", ".#.\n..#\n###"},
		// 9 cells per row: exercises the partial trailing byte.
		{"width not a multiple of 8", "#.#.#.#.#\n.#.#.#.#."},
		{"tall and narrow", "#\n.\n#\n.\n#\n.\n#\n.\n#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := DecodeText([]byte(tt.raw), '#', '.', '\n')
			if err != nil {
				t.Fatal(err)
			}

			blob, err := EncodeStorage(board)
			if err != nil {
				t.Fatalf("EncodeStorage() error = %v", err)
			}

			got, err := DecodeStorage(blob)
			if err != nil {
				t.Fatalf("DecodeStorage() error = %v", err)
			}
			if !got.Equal(board) {
				t.Errorf("round trip mismatch:\ngot  %v\nwant %v", got.Cells, board.Cells)
			}
		})
	}
}

func TestDecodeStorage_Corrupt(t *testing.T) {
	// compress builds a blob out of an arbitrary decompressed
	// payload so header fields can be forged.
	compress := func(raw []byte) []byte {
		return zstdEncoder.EncodeAll(raw, nil)
	}
	withHeader := func(magic string, version, width, height uint32, payload []byte) []byte {
		var buf bytes.Buffer
		var h blobHeader
		copy(h.Magic[:], magic)
		h.Version = version
		h.Width = width
		h.Height = height
		if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
			t.Fatal(err)
		}
		buf.Write(payload)
		return compress(buf.Bytes())
	}

	tests := []struct {
		name string
		blob []byte
	}{
		{"not zstd", []byte("definitely not a zstd stream")},
		{"empty blob", nil},
		{"truncated header", compress([]byte("GOLB"))},
		{"bad magic", withHeader("NOPE", blobVersion, 2, 2, []byte{0xF0})},
		{"unknown version", withHeader(blobMagic, 99, 2, 2, []byte{0xF0})},
		{"zero width", withHeader(blobMagic, blobVersion, 0, 2, nil)},
		{"zero height", withHeader(blobMagic, blobVersion, 2, 0, nil)},
		{"payload too short", withHeader(blobMagic, blobVersion, 8, 8, []byte{0xFF})},
		{"payload too long", withHeader(blobMagic, blobVersion, 2, 2, []byte{0xF0, 0x00, 0x00})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeStorage(tt.blob)
			if !errors.Is(err, ErrCorruptBlob) {
				t.Errorf("error = %v, want ErrCorruptBlob", err)
			}
		})
	}
}

func TestEncodeStorage_RejectsDegenerateBoard(t *testing.T) {
	b := &life.Board{Width: 0, Height: 0}
	if _, err := EncodeStorage(b); err == nil {
		t.Error("expected an error for a zero-dimension board")
	}
}

func TestPackCells(t *testing.T) {
	tests := []struct {
		name  string
		cells []bool
		want  []byte
	}{
		{"empty", nil, []byte{}},
		{"one alive", []bool{true}, []byte{0x80}},
		{"one dead", []bool{false}, []byte{0x00}},
		{
			"full byte alternating",
			[]bool{true, false, true, false, true, false, true, false},
			[]byte{0xAA},
		},
		{
			"nine cells spill into a second byte",
			[]bool{true, true, true, true, true, true, true, true, true},
			[]byte{0xFF, 0x80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := packCells(tt.cells)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("packCells() = %x, want %x", got, tt.want)
			}

			back := make([]bool, len(tt.cells))
			unpackCells(got, back)
			for i := range tt.cells {
				if back[i] != tt.cells[i] {
					t.Errorf("unpack mismatch at %d", i)
				}
			}
		})
	}
}
