package graph

import (
	"fmt"

	"github.com/canopy-tools/canopy/encoding"
	"github.com/canopy-tools/canopy/endian"
	"github.com/canopy-tools/canopy/section"
)

// Decoder validates an encoded document and builds a Document view over it.
//
// The decoder handles:
//   - Header parsing with validation
//   - Section bounds and record alignment
//   - String table views (keys, attributes, text)
//
// Decoding never copies the input; the Document references data directly.
//
// Note: The Decoder is NOT thread-safe.
type Decoder struct {
	data   []byte
	header section.Header
	engine endian.EndianEngine
}

// NewDecoder parses and validates the header of data.
//
// Returns:
//   - *Decoder: New decoder instance ready for Decode
//   - error: ErrInvalidHeaderSize, ErrInvalidHeader, ErrSectionOutOfBounds or ErrMisalignedSection
func NewDecoder(data []byte) (*Decoder, error) {
	decoder := &Decoder{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}

	if err := decoder.parseHeader(); err != nil {
		return nil, err
	}

	return decoder, nil
}

// Decode builds the Document view.
func (d *Decoder) Decode() (*Document, error) {
	keys, err := d.table(section.KeysText, section.KeysOffsets)
	if err != nil {
		return nil, fmt.Errorf("keys table: %w", err)
	}

	attributes, err := d.table(section.AttributesText, section.AttributesOffsets)
	if err != nil {
		return nil, fmt.Errorf("attributes table: %w", err)
	}

	texts, err := d.table(section.TextsText, section.TextsOffsets)
	if err != nil {
		return nil, fmt.Errorf("text table: %w", err)
	}

	return &Document{
		data:           d.data,
		header:         d.header,
		engine:         d.engine,
		keys:           keys,
		attributes:     attributes,
		texts:          texts,
		attributeEdges: d.section(section.AttributeEdges),
		elementEdges:   d.section(section.ElementEdges),
	}, nil
}

func (d *Decoder) parseHeader() error {
	var header section.Header
	if err := header.Parse(d.data); err != nil {
		return err
	}

	if err := header.Validate(len(d.data)); err != nil {
		return err
	}

	d.header = header

	return nil
}

func (d *Decoder) section(s section.Section) []byte {
	start, end := d.header.SectionRange(s)
	return d.data[start:end:end]
}

func (d *Decoder) table(chars, offsets section.Section) (*encoding.PackedStringDecoder, error) {
	dec, err := encoding.NewPackedStringDecoder(d.section(chars), d.section(offsets), d.engine)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", offsets, err)
	}

	return dec, nil
}

// Decode validates data and returns a Document view over it.
func Decode(data []byte) (*Document, error) {
	dec, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.Decode()
}
