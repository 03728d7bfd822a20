package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/canopy-tools/canopy/graph"
	"github.com/canopy-tools/canopy/internal/hash"
	"github.com/canopy-tools/canopy/section"
)

type inspectOpts struct {
	compression string
	dump        bool
}

func newInspectCmd(root *rootOpts) *cobra.Command {
	opts := inspectOpts{}

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize an encoded document",
		Long: `Inspect validates a canopy document and prints its header, section sizes,
table and edge counts, and xxHash64 digest. With --dump it also lists every
string and edge.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := root.compressionFor(cmd, opts.compression)
			if err != nil {
				return err
			}

			data, err := readDocument(cmd, args[0], ct)
			if err != nil {
				return err
			}

			doc, err := graph.Decode(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			loggerFromContext(cmd.Context()).Debug("decoded", "file", args[0], "bytes", doc.Size())

			w := cmd.OutOrStdout()
			printSummary(w, args[0], doc)
			if opts.dump {
				return dumpDocument(w, doc)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.compression, "compression", "none", "compression the file was written with")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "list every string and edge")

	return cmd
}

func printSummary(w io.Writer, name string, doc *graph.Document) {
	printTitle(w, name)
	printField(w, "size", doc.Size())
	printField(w, "digest", fmt.Sprintf("%016x", doc.Digest()))

	fmt.Fprintln(w)
	printTitle(w, "Sections")
	h := doc.Header()
	for _, s := range section.Sections {
		start, end := h.SectionRange(s)
		printField(w, s.String(), fmt.Sprintf("%d bytes %s", h.SectionSize(s),
			styleDim.Render(fmt.Sprintf("[%d, %d)", start, end))))
	}

	fmt.Fprintln(w)
	printTitle(w, "Counts")
	printField(w, "keys", doc.Keys().Len())
	printField(w, "distinct keys", distinctKeys(doc))
	printField(w, "attributes", doc.Attributes().Len())
	printField(w, "text runs", doc.Texts().Len())
	printField(w, "attribute edges", doc.AttributeEdgeCount())
	printField(w, "element edges", doc.ElementEdgeCount())
}

// distinctKeys counts the distinct element names, doctype included.
func distinctKeys(doc *graph.Document) int {
	seen := make(map[uint64]struct{})
	for _, key := range doc.Keys().All() {
		seen[hash.ID(key)] = struct{}{}
	}

	return len(seen)
}

func dumpDocument(w io.Writer, doc *graph.Document) error {
	tables := []struct {
		name  string
		table interface {
			Strings() ([]string, error)
		}
	}{
		{"Keys", doc.Keys()},
		{"Attributes", doc.Attributes()},
		{"Texts", doc.Texts()},
	}
	for _, tbl := range tables {
		strs, err := tbl.table.Strings()
		if err != nil {
			return fmt.Errorf("%s: %w", tbl.name, err)
		}

		fmt.Fprintln(w)
		printTitle(w, tbl.name)
		for i, s := range strs {
			fmt.Fprintf(w, "  %s %q\n", styleDim.Render(fmt.Sprintf("%5d", i)), s)
		}
	}

	fmt.Fprintln(w)
	printTitle(w, "Attribute edges")
	for edge := range doc.AttributeEdges() {
		fmt.Fprintf(w, "  node %d -> attribute %d\n", edge.Node, edge.Attribute)
	}

	fmt.Fprintln(w)
	printTitle(w, "Element edges")
	for edge := range doc.ElementEdges() {
		fmt.Fprintf(w, "  %-5s %d -> %d\n", edge.Kind, edge.A, edge.B)
	}

	return nil
}
