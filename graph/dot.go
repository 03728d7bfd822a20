package graph

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// DOTOptions configures Graphviz export.
type DOTOptions struct {
	// Text includes text nodes and their attachment edges.
	Text bool
	// Attributes appends each node's attribute keys to its label.
	Attributes bool
	// MaxLabel truncates text labels to this many runes; zero means 24.
	MaxLabel int
}

// ToDOT renders the element edge log of doc as a Graphviz digraph.
//
// Element and doctype nodes are labeled with their key. Node ids that appear in
// edges without an introducing structural edge (the root, and ids skipped by end
// tags) are drawn as plain circles labeled with their number.
func ToDOT(doc *Document, opts DOTOptions) (string, error) {
	maxLabel := opts.MaxLabel
	if maxLabel <= 0 {
		maxLabel = 24
	}

	labels := make(map[uint32]string)
	for id, key := range doc.ElementNodes() {
		labels[id] = key
	}

	attrs := make(map[uint32][]string)
	if opts.Attributes {
		// Attribute edge i and attribute table entry i are appended together.
		i := 0
		for edge := range doc.AttributeEdges() {
			key, err := doc.Attributes().At(i)
			if err != nil {
				return "", fmt.Errorf("attribute %d: %w", edge.Attribute, err)
			}
			attrs[edge.Node] = append(attrs[edge.Node], key)
			i++
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded\", fontsize=12];\n")
	buf.WriteString("\n")

	seen := make(map[uint32]bool)
	var bare []uint32
	declare := func(id uint32) {
		if seen[id] {
			return
		}
		seen[id] = true

		label, ok := labels[id]
		if !ok {
			bare = append(bare, id)
			return
		}
		if keys := attrs[id]; len(keys) > 0 {
			label += "\n" + strings.Join(keys, " ")
		}
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", id, label)
	}

	var edges []string
	for edge := range doc.ElementEdges() {
		switch {
		case edge.IsChild():
			declare(edge.A)
			declare(edge.B)
			edges = append(edges, fmt.Sprintf("  n%d -> n%d;\n", edge.A, edge.B))
		case edge.IsText() && opts.Text:
			declare(edge.A)
			text, err := doc.Texts().At(int(edge.B))
			if err != nil {
				return "", fmt.Errorf("text node %d: %w", edge.B, err)
			}
			fmt.Fprintf(&buf, "  t%d [shape=note, label=%q];\n", edge.B, truncate(text, maxLabel))
			edges = append(edges, fmt.Sprintf("  n%d -> t%d [style=dashed];\n", edge.A, edge.B))
		}
	}

	slices.Sort(bare)
	for _, id := range bare {
		fmt.Fprintf(&buf, "  n%d [shape=circle, label=\"%d\"];\n", id, id)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n]) + "…"
}
