// Package graph implements the canopy document encoder and its read-side view.
//
// The Encoder consumes parse events (see package event) one at a time and builds
// a columnar graph: three packed string tables (keys, attributes, text) and two
// edge logs (element edges and attribute edges). On end-of-stream it emits one
// flat little-endian buffer laid out as described in package section.
//
// # Encoding
//
//	enc, _ := graph.NewEncoder()
//	_ = enc.Process(event.StartTag{Name: "p"})
//	_ = enc.Process(event.Characters{Text: "hi"})
//	_ = enc.Process(event.EndTag{Name: "p"})
//	_ = enc.Process(event.EndOfStream{})
//	doc, _ := enc.Bytes()
//
// produces keys ["p"], text ["hi"], element edges (0,0,1) and (1,1,0), and no
// attribute edges.
//
// # Numbering
//
// Node ids come from a counter advanced by every doctype, start tag and end tag.
// Node 0 is the implicit root. A structural edge (0, a, b) introduces node b
// under the node a that was current; an end tag advances the counter without an
// edge, so later siblings receive fresh ids rather than returning to their
// parent's id.
//
// Attribute ids come from a separate document-wide counter. A start tag with n
// attributes claims ids [c, c+n). A doctype always claims three ids (name,
// public id, system id) and records edges only for the fields present, so the
// attribute id space can have gaps.
//
// # Decoding
//
// Decode validates the header and returns a Document that resolves strings and
// edges in constant time straight from the buffer:
//
//	doc, err := graph.Decode(buf)
//	for i, key := range doc.Keys().All() { ... }
//	for edge := range doc.ElementEdges() { ... }
package graph
