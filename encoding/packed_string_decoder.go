package encoding

import (
	"fmt"
	"iter"

	"github.com/canopy-tools/canopy/endian"
	"github.com/canopy-tools/canopy/errs"
	"github.com/canopy-tools/canopy/section"
)

// PackedStringDecoder is a read-only view over one serialized string table.
//
// It keeps references to the character section and the offset section of a
// document and resolves strings lazily, so construction is O(1) and each lookup
// is O(1). The view never copies the document.
type PackedStringDecoder struct {
	chars   []byte
	offsets []byte
	engine  endian.EndianEngine
}

// NewPackedStringDecoder creates a view over chars and its offset table.
// It returns ErrMisalignedSection when offsets is not a whole number of pairs.
func NewPackedStringDecoder(chars, offsets []byte, engine endian.EndianEngine) (*PackedStringDecoder, error) {
	if len(offsets)%section.OffsetPairSize != 0 {
		return nil, fmt.Errorf("%w: offset table is %d bytes", errs.ErrMisalignedSection, len(offsets))
	}

	return &PackedStringDecoder{
		chars:   chars,
		offsets: offsets,
		engine:  engine,
	}, nil
}

// Len returns the number of strings in the table.
func (d *PackedStringDecoder) Len() int {
	return len(d.offsets) / section.OffsetPairSize
}

// Size returns the byte length of the character buffer.
func (d *PackedStringDecoder) Size() int {
	return len(d.chars)
}

// Offsets returns the raw (start, end) pair of string i.
func (d *PackedStringDecoder) Offsets(i int) (start, end uint32, err error) {
	if i < 0 || i >= d.Len() {
		return 0, 0, fmt.Errorf("%w: string %d of %d", errs.ErrIndexOutOfRange, i, d.Len())
	}

	pos := i * section.OffsetPairSize

	return d.engine.Uint32(d.offsets[pos:]), d.engine.Uint32(d.offsets[pos+section.WordSize:]), nil
}

// Bytes returns string i as a sub-slice of the character buffer.
func (d *PackedStringDecoder) Bytes(i int) ([]byte, error) {
	start, end, err := d.Offsets(i)
	if err != nil {
		return nil, err
	}

	if start > end || uint64(end) > uint64(len(d.chars)) {
		return nil, fmt.Errorf("%w: string %d spans [%d, %d) of %d bytes",
			errs.ErrInvalidOffsetPair, i, start, end, len(d.chars))
	}

	return d.chars[start:end], nil
}

// At returns string i.
func (d *PackedStringDecoder) At(i int) (string, error) {
	b, err := d.Bytes(i)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// All returns an iterator over the strings in append order.
// Iteration stops at the first string whose offsets are invalid; use Strings to observe the error.
func (d *PackedStringDecoder) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := range d.Len() {
			s, err := d.At(i)
			if err != nil {
				return
			}
			if !yield(i, s) {
				return
			}
		}
	}
}

// Strings materializes every string in append order.
func (d *PackedStringDecoder) Strings() ([]string, error) {
	out := make([]string, 0, d.Len())
	for i := range d.Len() {
		s, err := d.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
