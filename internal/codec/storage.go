package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/robherley/game-of-life/internal/life"
)

// ErrCorruptBlob means a stored blob could not be decoded: the zstd
// stream is broken, the header is unrecognized, or the payload length
// does not match the dimensions the header declares.
var ErrCorruptBlob = errors.New("corrupt board blob")

const (
	blobMagic          = "GOLB"
	blobVersion uint32 = 1
)

// blobHeader is the exact in-memory layout of the decompressed blob
// header. It contains only fixed-width fields so binary.Write and
// binary.Read can handle it whole.
type blobHeader struct {
	Magic   [4]byte
	Version uint32
	Width   uint32
	Height  uint32
}

const blobHeaderSize = 16

// Shared zstd coders. EncodeAll/DecodeAll on these are safe for
// concurrent use. Construction with default options cannot fail.
var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// EncodeStorage serializes a board into its durable form: a
// little-endian header (magic, version, width, height) followed by
// the cells bit-packed in row-major order, MSB first within each
// byte, all wrapped in a zstd stream.
//
// The decompressed payload is deterministic; the compressed bytes are
// only guaranteed to decompress back to it.
func EncodeStorage(b *life.Board) ([]byte, error) {
	if b.Width <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("cannot encode %dx%d board", b.Width, b.Height)
	}

	header := blobHeader{
		Version: blobVersion,
		Width:   uint32(b.Width),
		Height:  uint32(b.Height),
	}
	copy(header.Magic[:], blobMagic)

	var buf bytes.Buffer
	buf.Grow(blobHeaderSize + packedLen(b.Width, b.Height))
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	buf.Write(packCells(b.Cells))

	return zstdEncoder.EncodeAll(buf.Bytes(), make([]byte, 0, buf.Len()/2)), nil
}

// DecodeStorage is the inverse of EncodeStorage. Any structural
// problem with the blob is reported as ErrCorruptBlob; a stored blob
// whose declared dimensions disagree with its payload length is
// rejected rather than truncated.
func DecodeStorage(blob []byte) (*life.Board, error) {
	raw, err := zstdDecoder.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}

	if len(raw) < blobHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for a header", ErrCorruptBlob, len(raw))
	}

	var header blobHeader
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}
	if string(header.Magic[:]) != blobMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorruptBlob, header.Magic)
	}
	if header.Version != blobVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptBlob, header.Version)
	}
	if header.Width == 0 || header.Height == 0 {
		return nil, fmt.Errorf("%w: zero dimension %dx%d", ErrCorruptBlob, header.Width, header.Height)
	}

	width, height := int(header.Width), int(header.Height)
	payload := raw[blobHeaderSize:]
	if len(payload) != packedLen(width, height) {
		return nil, fmt.Errorf("%w: payload is %d bytes, %dx%d board needs %d",
			ErrCorruptBlob, len(payload), width, height, packedLen(width, height))
	}

	board := life.NewBoard(width, height)
	unpackCells(payload, board.Cells)
	return board, nil
}

func packedLen(width, height int) int {
	return (width*height + 7) / 8
}

// packCells folds cell states into bits, eight cells per byte,
// highest bit first.
func packCells(cells []bool) []byte {
	packed := make([]byte, (len(cells)+7)/8)
	for i, alive := range cells {
		if alive {
			packed[i/8] |= 1 << (7 - i%8)
		}
	}
	return packed
}

func unpackCells(packed []byte, cells []bool) {
	for i := range cells {
		cells[i] = packed[i/8]&(1<<(7-i%8)) != 0
	}
}
