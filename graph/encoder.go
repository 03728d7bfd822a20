package graph

import (
	"fmt"

	"github.com/canopy-tools/canopy/encoding"
	"github.com/canopy-tools/canopy/endian"
	"github.com/canopy-tools/canopy/errs"
	"github.com/canopy-tools/canopy/event"
	"github.com/canopy-tools/canopy/format"
	"github.com/canopy-tools/canopy/internal/options"
	"github.com/canopy-tools/canopy/section"
)

const (
	// DoctypeKey is the keys-table entry recorded for a document-type declaration.
	DoctypeKey = "!DOCTYPE"

	// doctypeAttributeSlots is the fixed attribute-counter advance for a doctype:
	// name, public id and system id, whether present or not.
	doctypeAttributeSlots = 3

	defaultEdgeCapacity = 64
)

// Encoder turns a parse event stream into a canopy document in a single forward pass.
//
// It keeps three packed string tables (keys, attributes, text), two flat edge
// logs and three monotonic counters:
//   - node: advanced once per doctype, start tag and end tag
//   - attribute: advanced by the attribute count of each start tag, and by 3 per doctype
//   - text node: advanced once per text run
//
// The counters are only advanced by Process; there is no other mutator.
// An end tag advances the node counter without recording anything, so node ids
// after a close do not line up with key-table indices.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used by a single goroutine at a time.
//
// Note: The Encoder is NOT reusable. After end-of-stream, a new encoder must be created.
type Encoder struct {
	*EncoderConfig

	keys       *encoding.PackedStringEncoder
	attributes *encoding.PackedStringEncoder
	texts      *encoding.PackedStringEncoder

	attributeEdges []uint32 // node, attribute, node, attribute, ...
	elementEdges   []uint32 // kind, a, b, kind, a, b, ...

	node      uint32
	attribute uint32
	textNode  uint32

	stats    Stats
	finished bool
	doc      []byte
	engine   endian.EndianEngine
}

// NewEncoder creates an Encoder with empty tables and zeroed counters.
//
// Returns:
//   - *Encoder: New encoder ready for Process
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		EncoderConfig:  config,
		keys:           encoding.NewPackedStringEncoder(),
		attributes:     encoding.NewPackedStringEncoder(),
		texts:          encoding.NewPackedStringEncoder(),
		attributeEdges: make([]uint32, 0, config.edgeCapacity),
		elementEdges:   make([]uint32, 0, 3*config.edgeCapacity),
		engine:         endian.GetLittleEndianEngine(),
	}, nil
}

// Process handles one event.
//
// Comments, null characters and parse errors are counted and otherwise dropped.
// EndOfStream serializes the document and hands it to the configured Output.
// Any event after EndOfStream returns ErrEncoderFinished.
//
// Malformed sequences, such as an end tag without a start tag, are accepted as is.
func (e *Encoder) Process(ev event.Event) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	switch ev := ev.(type) {
	case event.Doctype:
		e.stats.Doctypes++
		e.doctype(ev)
	case event.Characters:
		e.stats.Characters++
		e.characters(ev)
	case event.StartTag:
		e.stats.StartTags++
		e.startTag(ev)
	case event.EndTag:
		e.stats.EndTags++
		e.node++
	case event.Comment:
		e.stats.Comments++
	case event.NullCharacter:
		e.stats.NullCharacters++
	case event.ParseError:
		e.stats.ParseErrors++
	case event.EndOfStream:
		e.stats.EndOfStream++
		return e.finish()
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnknownEvent, ev)
	}

	return nil
}

// doctype records the declaration as a node keyed DoctypeKey.
// Its present fields land in fixed slots 0/1/2 of the attribute range and are
// owned by the node that was current when the declaration arrived.
func (e *Encoder) doctype(d event.Doctype) {
	e.keys.Append(DoctypeKey)

	owner := e.node
	e.addChildEdge()

	for slot, field := range [doctypeAttributeSlots]*string{d.Name, d.PublicID, d.SystemID} {
		if field == nil {
			continue
		}
		e.attributes.Append(*field)
		e.attributeEdges = append(e.attributeEdges, owner, e.attribute+uint32(slot)) //nolint:gosec
	}

	e.attribute += doctypeAttributeSlots
}

func (e *Encoder) characters(c event.Characters) {
	e.texts.Append(c.Text)
	e.elementEdges = append(e.elementEdges, uint32(format.EdgeText), e.node, e.textNode)
	e.textNode++
}

// startTag records the element and its attribute keys. The new node becomes
// current and owns the attributes.
func (e *Encoder) startTag(tag event.StartTag) {
	e.keys.Append(tag.Name)
	e.addChildEdge()

	for i, attr := range tag.Attributes {
		e.attributes.Append(attr.Key())
		e.attributeEdges = append(e.attributeEdges, e.node, e.attribute+uint32(i)) //nolint:gosec
	}

	e.attribute += uint32(len(tag.Attributes)) //nolint:gosec
}

// addChildEdge records (0, node, node+1) and advances the node counter.
func (e *Encoder) addChildEdge() {
	e.elementEdges = append(e.elementEdges, uint32(format.EdgeChild), e.node, e.node+1)
	e.node++
}

// finish serializes the document and releases the table buffers.
// The encoder is finished even when serialization or the output fails.
func (e *Encoder) finish() error {
	e.finished = true
	defer e.release()

	header, err := section.NewHeader([section.SectionCount]int{
		e.keys.Size(),
		e.attributes.Size(),
		e.texts.Size(),
		e.keys.OffsetsSize(),
		e.attributes.OffsetsSize(),
		e.texts.OffsetsSize(),
		len(e.attributeEdges) * section.WordSize,
		len(e.elementEdges) * section.WordSize,
	})
	if err != nil {
		return err
	}

	// Allocate exact-size buffer; the document is handed to the caller, not pooled.
	doc := make([]byte, 0, header.Size())
	doc = header.AppendTo(doc)

	doc = append(doc, e.keys.Chars()...)
	doc = append(doc, e.attributes.Chars()...)
	doc = append(doc, e.texts.Chars()...)

	doc = e.keys.AppendOffsets(doc, e.engine)
	doc = e.attributes.AppendOffsets(doc, e.engine)
	doc = e.texts.AppendOffsets(doc, e.engine)

	for _, v := range e.attributeEdges {
		doc = e.engine.AppendUint32(doc, v)
	}
	for _, v := range e.elementEdges {
		doc = e.engine.AppendUint32(doc, v)
	}

	e.doc = doc

	if e.output != nil {
		if err := e.output(doc); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrOutputWrite, err)
		}
	}

	return nil
}

func (e *Encoder) release() {
	e.keys.Release()
	e.attributes.Release()
	e.texts.Release()
}

// Bytes returns the finished document.
// It returns ErrNotFinished before EndOfStream has been processed.
func (e *Encoder) Bytes() ([]byte, error) {
	if e.doc == nil {
		return nil, errs.ErrNotFinished
	}

	return e.doc, nil
}

// Finished reports whether EndOfStream has been processed.
func (e *Encoder) Finished() bool {
	return e.finished
}

// NodeCount returns the current value of the node counter.
func (e *Encoder) NodeCount() uint32 {
	return e.node
}

// AttributeCount returns the current value of the attribute counter.
func (e *Encoder) AttributeCount() uint32 {
	return e.attribute
}

// TextNodeCount returns the current value of the text node counter.
func (e *Encoder) TextNodeCount() uint32 {
	return e.textNode
}

// Stats returns the per-kind event counts so far.
func (e *Encoder) Stats() Stats {
	return e.stats
}
