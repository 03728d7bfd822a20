// Package event defines the closed set of parse events consumed by the graph encoder.
//
// The set is fixed: Doctype, Characters, StartTag, EndTag, Comment, NullCharacter,
// ParseError and EndOfStream. Consumers dispatch with an exhaustive type switch:
//
//	switch ev := ev.(type) {
//	case event.StartTag:
//	    // ...
//	case event.EndOfStream:
//	    // ...
//	}
//
// Events are plain values; the unexported marker method keeps other packages
// from adding members to the set.
package event

import "github.com/canopy-tools/canopy/format"

// Event is one parse event. Only the types declared in this package implement it.
type Event interface {
	Kind() format.EventKind
	sealed()
}

// Sink consumes events one at a time, in arrival order.
type Sink interface {
	Process(ev Event) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ev Event) error

// Process calls f(ev).
func (f SinkFunc) Process(ev Event) error {
	return f(ev)
}

// Doctype is a document-type declaration. Each field is nil when absent from the markup.
type Doctype struct {
	Name     *string
	PublicID *string
	SystemID *string
}

// Characters is a run of text, verbatim.
type Characters struct {
	Text string
}

// Attribute is one attribute of a start tag, in source order.
type Attribute struct {
	Namespace string
	Local     string
	Value     string
}

// Key returns "namespace:local" when the attribute has a namespace, else local.
func (a Attribute) Key() string {
	if a.Namespace == "" {
		return a.Local
	}

	return a.Namespace + ":" + a.Local
}

// StartTag opens an element. SelfClosing records a trailing "/>" and implies no EndTag.
type StartTag struct {
	Name        string
	Attributes  []Attribute
	SelfClosing bool
}

// EndTag closes an element.
type EndTag struct {
	Name string
}

// Comment carries comment text.
type Comment struct {
	Text string
}

// NullCharacter marks a NUL byte in character data.
type NullCharacter struct{}

// ParseError is a tokenizer diagnostic.
type ParseError struct {
	Message string
}

// EndOfStream terminates the stream. It is always the last event.
type EndOfStream struct{}

func (Doctype) Kind() format.EventKind       { return format.EventDoctype }
func (Characters) Kind() format.EventKind    { return format.EventCharacters }
func (StartTag) Kind() format.EventKind      { return format.EventStartTag }
func (EndTag) Kind() format.EventKind        { return format.EventEndTag }
func (Comment) Kind() format.EventKind       { return format.EventComment }
func (NullCharacter) Kind() format.EventKind { return format.EventNullCharacter }
func (ParseError) Kind() format.EventKind    { return format.EventParseError }
func (EndOfStream) Kind() format.EventKind   { return format.EventEndOfStream }

func (Doctype) sealed()       {}
func (Characters) sealed()    {}
func (StartTag) sealed()      {}
func (EndTag) sealed()        {}
func (Comment) sealed()       {}
func (NullCharacter) sealed() {}
func (ParseError) sealed()    {}
func (EndOfStream) sealed()   {}

// String returns a pointer to s, for building Doctype fields.
func String(s string) *string {
	return &s
}
