package graph

import (
	"fmt"
	"iter"

	"github.com/canopy-tools/canopy/encoding"
	"github.com/canopy-tools/canopy/endian"
	"github.com/canopy-tools/canopy/errs"
	"github.com/canopy-tools/canopy/format"
	"github.com/canopy-tools/canopy/internal/hash"
	"github.com/canopy-tools/canopy/section"
)

// Document is a random-access view over an encoded canopy document.
//
// All accessors read directly from the underlying buffer, which must not be
// modified while the Document is in use. A Document is safe for concurrent reads.
type Document struct {
	data           []byte
	header         section.Header
	engine         endian.EndianEngine
	keys           *encoding.PackedStringDecoder
	attributes     *encoding.PackedStringDecoder
	texts          *encoding.PackedStringDecoder
	attributeEdges []byte
	elementEdges   []byte
}

// Header returns the parsed header.
func (d *Document) Header() section.Header {
	return d.header
}

// Size returns the document size in bytes.
func (d *Document) Size() int {
	return len(d.data)
}

// Bytes returns the underlying buffer.
func (d *Document) Bytes() []byte {
	return d.data
}

// Digest returns the xxHash64 of the whole document.
func (d *Document) Digest() uint64 {
	return hash.Sum(d.data)
}

// Keys returns the element/attribute key table.
func (d *Document) Keys() *encoding.PackedStringDecoder {
	return d.keys
}

// Attributes returns the attribute table.
func (d *Document) Attributes() *encoding.PackedStringDecoder {
	return d.attributes
}

// Texts returns the text table.
func (d *Document) Texts() *encoding.PackedStringDecoder {
	return d.texts
}

// AttributeEdgeCount returns the number of attribute edges.
func (d *Document) AttributeEdgeCount() int {
	return len(d.attributeEdges) / section.AttributeEdgeSize
}

// AttributeEdgeAt returns attribute edge i.
func (d *Document) AttributeEdgeAt(i int) (AttributeEdge, error) {
	if i < 0 || i >= d.AttributeEdgeCount() {
		return AttributeEdge{}, fmt.Errorf("%w: attribute edge %d of %d",
			errs.ErrIndexOutOfRange, i, d.AttributeEdgeCount())
	}

	pos := i * section.AttributeEdgeSize

	return AttributeEdge{
		Node:      d.engine.Uint32(d.attributeEdges[pos:]),
		Attribute: d.engine.Uint32(d.attributeEdges[pos+section.WordSize:]),
	}, nil
}

// AttributeEdges returns an iterator over the attribute edges in emission order.
func (d *Document) AttributeEdges() iter.Seq[AttributeEdge] {
	return func(yield func(AttributeEdge) bool) {
		for i := range d.AttributeEdgeCount() {
			edge, _ := d.AttributeEdgeAt(i)
			if !yield(edge) {
				return
			}
		}
	}
}

// ElementEdgeCount returns the number of element edges.
func (d *Document) ElementEdgeCount() int {
	return len(d.elementEdges) / section.ElementEdgeSize
}

// ElementEdgeAt returns element edge i.
func (d *Document) ElementEdgeAt(i int) (ElementEdge, error) {
	if i < 0 || i >= d.ElementEdgeCount() {
		return ElementEdge{}, fmt.Errorf("%w: element edge %d of %d",
			errs.ErrIndexOutOfRange, i, d.ElementEdgeCount())
	}

	pos := i * section.ElementEdgeSize

	return ElementEdge{
		Kind: format.EdgeKind(d.engine.Uint32(d.elementEdges[pos:])),
		A:    d.engine.Uint32(d.elementEdges[pos+section.WordSize:]),
		B:    d.engine.Uint32(d.elementEdges[pos+2*section.WordSize:]),
	}, nil
}

// ElementEdges returns an iterator over the element edges in emission order.
func (d *Document) ElementEdges() iter.Seq[ElementEdge] {
	return func(yield func(ElementEdge) bool) {
		for i := range d.ElementEdgeCount() {
			edge, _ := d.ElementEdgeAt(i)
			if !yield(edge) {
				return
			}
		}
	}
}

// AttributesOf returns the attribute ids owned by node, in emission order.
// The attribute log is unsorted, so this is a linear scan.
func (d *Document) AttributesOf(node uint32) []uint32 {
	var ids []uint32
	for edge := range d.AttributeEdges() {
		if edge.Node == node {
			ids = append(ids, edge.Attribute)
		}
	}

	return ids
}

// ElementNodes returns the ids of every doctype and element node, in emission
// order, paired with its key. The i-th structural edge always introduces the
// node whose key is entry i of the keys table.
func (d *Document) ElementNodes() iter.Seq2[uint32, string] {
	return func(yield func(uint32, string) bool) {
		keyIndex := 0
		for edge := range d.ElementEdges() {
			if !edge.IsChild() {
				continue
			}

			key, err := d.keys.At(keyIndex)
			if err != nil {
				return
			}
			keyIndex++

			if !yield(edge.B, key) {
				return
			}
		}
	}
}
