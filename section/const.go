package section

import "math"

// Word and record sizes in bytes.
const (
	WordSize          = 4 // every integer in a document is a 32-bit word
	HeaderWords       = 9 // number of words in the header
	HeaderSize        = HeaderWords * WordSize
	OffsetPairSize    = 2 * WordSize   // (start, end) entry of a string offset table
	AttributeEdgeSize = 2 * WordSize   // (node, attribute) record
	ElementEdgeSize   = 3 * WordSize   // (kind, a, b) record
	MaxOffset         = math.MaxUint32 // largest byte offset a header word can hold
	SectionCount      = HeaderWords - 1
)

// Section identifies one of the eight variable-size regions that follow the header.
// Section k occupies bytes [Words[k-1], Words[k]) of the document.
type Section int

const (
	KeysText          Section = iota + 1 // raw element/attribute key characters
	AttributesText                       // raw attribute characters
	TextsText                            // raw text-run characters
	KeysOffsets                          // (start, end) pairs into KeysText
	AttributesOffsets                    // (start, end) pairs into AttributesText
	TextsOffsets                         // (start, end) pairs into TextsText
	AttributeEdges                       // (node, attribute) pairs
	ElementEdges                         // (kind, a, b) triples
)

// Sections lists every section in layout order.
var Sections = [SectionCount]Section{
	KeysText, AttributesText, TextsText,
	KeysOffsets, AttributesOffsets, TextsOffsets,
	AttributeEdges, ElementEdges,
}

func (s Section) String() string {
	switch s {
	case KeysText:
		return "keys.text"
	case AttributesText:
		return "attributes.text"
	case TextsText:
		return "texts.text"
	case KeysOffsets:
		return "keys.offsets"
	case AttributesOffsets:
		return "attributes.offsets"
	case TextsOffsets:
		return "texts.offsets"
	case AttributeEdges:
		return "edges.attribute"
	case ElementEdges:
		return "edges.element"
	default:
		return "unknown"
	}
}

// RecordSize returns the size of one record in s, or 1 for character sections.
func (s Section) RecordSize() int {
	switch s {
	case KeysOffsets, AttributesOffsets, TextsOffsets:
		return OffsetPairSize
	case AttributeEdges:
		return AttributeEdgeSize
	case ElementEdges:
		return ElementEdgeSize
	default:
		return 1
	}
}

func (s Section) valid() bool {
	return s >= KeysText && s <= ElementEdges
}
