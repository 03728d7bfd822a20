package graph

import "github.com/canopy-tools/canopy/format"

// ElementEdge is one (kind, a, b) record of the element edge log.
//
// For format.EdgeChild, node B is a child of node A. For format.EdgeText, text
// node B was encountered while node A was current. The log is in emission order,
// not sorted by parent.
type ElementEdge struct {
	Kind format.EdgeKind
	A    uint32
	B    uint32
}

// IsChild reports whether e is a structural edge.
func (e ElementEdge) IsChild() bool {
	return e.Kind == format.EdgeChild
}

// IsText reports whether e is a text-attachment edge.
func (e ElementEdge) IsText() bool {
	return e.Kind == format.EdgeText
}

// AttributeEdge records that attribute table entry Attribute belongs to node Node.
type AttributeEdge struct {
	Node      uint32
	Attribute uint32
}
