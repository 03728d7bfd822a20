package format

import (
	"fmt"

	"github.com/canopy-tools/canopy/errs"
)

type (
	EventKind       uint8
	EdgeKind        uint32
	CompressionType uint8
)

const (
	EventDoctype       EventKind = 0x1 // EventDoctype is a document-type declaration.
	EventCharacters    EventKind = 0x2 // EventCharacters is a run of text.
	EventStartTag      EventKind = 0x3 // EventStartTag opens an element.
	EventEndTag        EventKind = 0x4 // EventEndTag closes an element.
	EventComment       EventKind = 0x5 // EventComment is a comment, discarded by the encoder.
	EventNullCharacter EventKind = 0x6 // EventNullCharacter is a NUL in character data, discarded by the encoder.
	EventParseError    EventKind = 0x7 // EventParseError is a tokenizer diagnostic, discarded by the encoder.
	EventEndOfStream   EventKind = 0x8 // EventEndOfStream terminates the stream.

	EdgeChild EdgeKind = 0 // EdgeChild links a parent node to a child element or doctype node.
	EdgeText  EdgeKind = 1 // EdgeText links the current node to a text node.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k EventKind) String() string {
	switch k {
	case EventDoctype:
		return "Doctype"
	case EventCharacters:
		return "Characters"
	case EventStartTag:
		return "StartTag"
	case EventEndTag:
		return "EndTag"
	case EventComment:
		return "Comment"
	case EventNullCharacter:
		return "NullCharacter"
	case EventParseError:
		return "ParseError"
	case EventEndOfStream:
		return "EndOfStream"
	default:
		return "Unknown"
	}
}

func (k EdgeKind) String() string {
	switch k {
	case EdgeChild:
		return "child"
	case EdgeText:
		return "text"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-sensitive lowercase name ("none", "zstd", "s2", "lz4")
// to its CompressionType. The empty string maps to CompressionNone.
func ParseCompressionType(name string) (CompressionType, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}
