package section

import (
	"fmt"

	"github.com/canopy-tools/canopy/endian"
	"github.com/canopy-tools/canopy/errs"
)

// Header is the fixed 36-byte table at the start of every document.
//
// Words[0] is the header size. Each following word is the end offset of the
// matching section, so Words[k] - Words[k-1] is the byte length of Section(k)
// and Words[8] is the total document size.
type Header struct {
	Words [HeaderWords]uint32
}

// NewHeader builds a header from the byte length of each section in layout order.
// It returns ErrDocumentTooLarge when the cumulative size exceeds MaxOffset.
func NewHeader(sizes [SectionCount]int) (Header, error) {
	var h Header

	total := uint64(HeaderSize)
	h.Words[0] = HeaderSize
	for i, size := range sizes {
		if size < 0 {
			return Header{}, fmt.Errorf("%w: negative size %d for %s", errs.ErrInvalidHeader, size, Sections[i])
		}

		total += uint64(size)
		if total > MaxOffset {
			return Header{}, fmt.Errorf("%w: %s ends at byte %d", errs.ErrDocumentTooLarge, Sections[i], total)
		}
		h.Words[i+1] = uint32(total)
	}

	return h, nil
}

// Parse reads the header words from the first HeaderSize bytes of data.
// It does not validate the words; call Validate for that.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	for i := range h.Words {
		h.Words[i] = engine.Uint32(data[i*WordSize:])
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()
	for _, w := range h.Words {
		dst = engine.AppendUint32(dst, w)
	}

	return dst
}

// Validate checks that the header describes a document of exactly size bytes:
// Words[0] is HeaderSize, words never decrease, the last word equals size and
// every numeric section holds a whole number of records.
func (h Header) Validate(size int) error {
	if h.Words[0] != HeaderSize {
		return fmt.Errorf("%w: header size word is %d, want %d", errs.ErrInvalidHeader, h.Words[0], HeaderSize)
	}

	for k := 1; k < HeaderWords; k++ {
		if h.Words[k] < h.Words[k-1] {
			return fmt.Errorf("%w: %s ends at %d before it starts at %d",
				errs.ErrInvalidHeader, Section(k), h.Words[k], h.Words[k-1])
		}
	}

	if uint64(h.Words[HeaderWords-1]) != uint64(size) {
		return fmt.Errorf("%w: header declares %d bytes, buffer has %d",
			errs.ErrSectionOutOfBounds, h.Words[HeaderWords-1], size)
	}

	for _, s := range Sections {
		if n := h.SectionSize(s); n%uint32(s.RecordSize()) != 0 { //nolint:gosec
			return fmt.Errorf("%w: %s is %d bytes, not a multiple of %d",
				errs.ErrMisalignedSection, s, n, s.RecordSize())
		}
	}

	return nil
}

// SectionRange returns the [start, end) byte range of s.
// It panics if s is not one of the eight sections.
func (h Header) SectionRange(s Section) (start, end uint32) {
	if !s.valid() {
		panic(fmt.Sprintf("section: invalid section %d", s))
	}

	return h.Words[s-1], h.Words[s]
}

// SectionSize returns the byte length of s.
func (h Header) SectionSize(s Section) uint32 {
	start, end := h.SectionRange(s)
	return end - start
}

// Size returns the total document size declared by the header.
func (h Header) Size() uint32 {
	return h.Words[HeaderWords-1]
}
