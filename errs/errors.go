// Package errs defines the sentinel errors shared by the canopy packages.
//
// Errors are wrapped with context using fmt.Errorf and the %w verb, so callers
// should match them with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize is returned when a buffer is shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidHeader is returned when the header words are not a valid cumulative offset table.
	ErrInvalidHeader = errors.New("invalid header")
	// ErrSectionOutOfBounds is returned when a section extends beyond the buffer.
	ErrSectionOutOfBounds = errors.New("section out of bounds")
	// ErrMisalignedSection is returned when a numeric section is not a whole number of records.
	ErrMisalignedSection = errors.New("misaligned section")
	// ErrInvalidOffsetPair is returned when a string offset pair does not address the character buffer.
	ErrInvalidOffsetPair = errors.New("invalid offset pair")
	// ErrIndexOutOfRange is returned when a string or edge index is past the end of its table.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDocumentTooLarge is returned when a section offset does not fit in 32 bits.
	ErrDocumentTooLarge = errors.New("document too large")

	// ErrEncoderFinished is returned when an event arrives after end-of-stream.
	ErrEncoderFinished = errors.New("encoder already finished")
	// ErrNotFinished is returned when the output is requested before end-of-stream.
	ErrNotFinished = errors.New("encoder not finished")
	// ErrUnknownEvent is returned for an event type outside the closed event set.
	ErrUnknownEvent = errors.New("unknown event")

	// ErrInputRead wraps failures reading the raw markup.
	ErrInputRead = errors.New("input read failed")
	// ErrOutputWrite wraps failures handing the encoded buffer to its sink.
	ErrOutputWrite = errors.New("output write failed")

	// ErrInvalidCompression is returned for an unsupported compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
