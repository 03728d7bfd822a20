package graph

import "github.com/canopy-tools/canopy/format"

// Stats counts the events an Encoder has processed, by kind.
// Ignored kinds (comments, null characters, parse errors) are counted too.
type Stats struct {
	Doctypes       int
	Characters     int
	StartTags      int
	EndTags        int
	Comments       int
	NullCharacters int
	ParseErrors    int
	EndOfStream    int
}

// Total returns the number of events processed.
func (s Stats) Total() int {
	return s.Doctypes + s.Characters + s.StartTags + s.EndTags +
		s.Comments + s.NullCharacters + s.ParseErrors + s.EndOfStream
}

// Count returns the counter for kind.
func (s Stats) Count(kind format.EventKind) int {
	switch kind {
	case format.EventDoctype:
		return s.Doctypes
	case format.EventCharacters:
		return s.Characters
	case format.EventStartTag:
		return s.StartTags
	case format.EventEndTag:
		return s.EndTags
	case format.EventComment:
		return s.Comments
	case format.EventNullCharacter:
		return s.NullCharacters
	case format.EventParseError:
		return s.ParseErrors
	case format.EventEndOfStream:
		return s.EndOfStream
	default:
		return 0
	}
}
