package encoding

import (
	"github.com/canopy-tools/canopy/endian"
	"github.com/canopy-tools/canopy/internal/pool"
	"github.com/canopy-tools/canopy/section"
)

// PackedStringEncoder is an append-only string table: one concatenated character
// buffer plus a (start, end) byte offset pair per appended string.
//
// Strings are stored verbatim in append order. Identical strings are stored again
// each time they are appended; there is no interning.
//
// Note: The PackedStringEncoder is NOT thread-safe.
type PackedStringEncoder struct {
	chars   *pool.ByteBuffer
	offsets []uint32
}

// NewPackedStringEncoder creates an empty table backed by a pooled character buffer.
// Call Release once the table has been serialized.
func NewPackedStringEncoder() *PackedStringEncoder {
	return &PackedStringEncoder{
		chars: pool.GetTableBuffer(),
	}
}

// Append appends s and records its (start, end) offsets.
//
// Offsets are truncated to 32 bits; callers bound the total size through
// section.NewHeader, which rejects documents that do not fit.
func (e *PackedStringEncoder) Append(s string) {
	start := e.chars.Len()
	_, _ = e.chars.WriteString(s)

	e.offsets = append(e.offsets, uint32(start), uint32(start+len(s))) //nolint:gosec
}

// Len returns the number of strings appended.
func (e *PackedStringEncoder) Len() int {
	return len(e.offsets) / 2
}

// Size returns the byte length of the character buffer.
func (e *PackedStringEncoder) Size() int {
	return e.chars.Len()
}

// OffsetsSize returns the serialized byte length of the offset table.
func (e *PackedStringEncoder) OffsetsSize() int {
	return len(e.offsets) * section.WordSize
}

// Chars returns the character buffer. The slice is only valid until Release.
func (e *PackedStringEncoder) Chars() []byte {
	return e.chars.Bytes()
}

// Offsets returns the flat offset table: start0, end0, start1, end1, ...
func (e *PackedStringEncoder) Offsets() []uint32 {
	return e.offsets
}

// AppendOffsets appends the offset table to dst as little-endian words.
func (e *PackedStringEncoder) AppendOffsets(dst []byte, engine endian.EndianEngine) []byte {
	for _, off := range e.offsets {
		dst = engine.AppendUint32(dst, off)
	}

	return dst
}

// Release returns the character buffer to the pool. The encoder must not be used afterwards.
func (e *PackedStringEncoder) Release() {
	if e.chars != nil {
		pool.PutTableBuffer(e.chars)
		e.chars = nil
	}
	e.offsets = nil
}
