// Package canopy encodes HTML parse event streams into a compact binary graph.
//
// A canopy document holds three packed string tables (element keys, attribute
// keys, text runs) and two edge logs (node→attribute, and node→child /
// node→text) behind a 36-byte header of cumulative section offsets. It is
// produced in a single forward pass over the events, without building a tree.
//
// # Core Features
//
//   - Single-pass, append-only encoding with three monotonic counters
//   - Fixed little-endian layout readable without the encoder
//   - Random-access decoding straight from the buffer (no copy)
//   - Optional whole-document compression (None, Zstd, S2, LZ4)
//   - 64-bit xxHash64 document digest
//
// # Basic Usage
//
// Encoding markup:
//
//	import "github.com/canopy-tools/canopy"
//
//	doc, err := canopy.EncodeString(`<p class="lead">hello</p>`)
//	if err != nil {
//	    return err
//	}
//
// Encoding an event stream produced elsewhere:
//
//	enc, _ := canopy.NewEncoder()
//	for _, ev := range events {
//	    if err := enc.Process(ev); err != nil {
//	        return err
//	    }
//	}
//	doc, _ := enc.Bytes()
//
// Reading a document:
//
//	view, _ := canopy.Decode(doc)
//	for edge := range view.ElementEdges() {
//	    fmt.Println(edge.Kind, edge.A, edge.B)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the graph and
// source packages. For advanced usage, such as custom event sources or output
// sinks, use those packages directly.
package canopy

import (
	"context"
	"io"
	"strings"

	"github.com/canopy-tools/canopy/event"
	"github.com/canopy-tools/canopy/graph"
	"github.com/canopy-tools/canopy/internal/hash"
	"github.com/canopy-tools/canopy/source"
)

// NewEncoder creates a graph encoder.
//
// Parameters:
//   - opts: Optional encoder configuration (edge capacity, output sink)
//
// Returns:
//   - *graph.Encoder: Encoder ready to accept events
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...graph.EncoderOption) (*graph.Encoder, error) {
	return graph.NewEncoder(opts...)
}

// Encode reads HTML from r and returns the encoded document.
//
// The whole input is read before encoding starts; a read failure returns an
// error wrapping errs.ErrInputRead and no document.
func Encode(r io.Reader, opts ...source.Option) ([]byte, error) {
	return EncodeContext(context.Background(), r, opts...)
}

// EncodeContext is Encode with cancellation.
func EncodeContext(ctx context.Context, r io.Reader, opts ...source.Option) ([]byte, error) {
	enc, err := graph.NewEncoder()
	if err != nil {
		return nil, err
	}

	if err := source.Drive(ctx, r, enc, opts...); err != nil {
		return nil, err
	}

	return enc.Bytes()
}

// EncodeString encodes an HTML string.
func EncodeString(markup string, opts ...source.Option) ([]byte, error) {
	return Encode(strings.NewReader(markup), opts...)
}

// EncodeEvents encodes a complete event sequence. A trailing EndOfStream is
// added when events does not end with one.
func EncodeEvents(events []event.Event, opts ...graph.EncoderOption) ([]byte, error) {
	enc, err := graph.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		if err := enc.Process(ev); err != nil {
			return nil, err
		}
	}

	if !enc.Finished() {
		if err := enc.Process(event.EndOfStream{}); err != nil {
			return nil, err
		}
	}

	return enc.Bytes()
}

// Decode validates data and returns a read view over it.
//
// Returns:
//   - *graph.Document: View referencing data (no copy)
//   - error: Header or layout validation error
func Decode(data []byte) (*graph.Document, error) {
	return graph.Decode(data)
}

// Digest returns the xxHash64 digest of an encoded document.
func Digest(data []byte) uint64 {
	return hash.Sum(data)
}
