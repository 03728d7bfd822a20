package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/canopy-tools/canopy/errs"
	"github.com/canopy-tools/canopy/graph"
)

type dotOpts struct {
	output      string
	compression string
	svg         bool
	text        bool
	attributes  bool
	maxLabel    int
}

func newDotCmd(root *rootOpts) *cobra.Command {
	opts := dotOpts{}

	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Export the element graph as Graphviz DOT or SVG",
		Example: `  canopyc dot page.canopy | dot -Tpng > page.png
  canopyc dot page.canopy --svg --text -o page.svg`,
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

			dot, err := graph.ToDOT(doc, graph.DOTOptions{
				Text:       opts.text,
				Attributes: opts.attributes,
				MaxLabel:   opts.maxLabel,
			})
			if err != nil {
				return err
			}

			out := []byte(dot)
			if opts.svg {
				prog := newProgress(loggerFromContext(cmd.Context()))
				if out, err = renderSVG(cmd.Context(), dot); err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			if err := writeOutput(cmd.OutOrStdout(), opts.output, out); err != nil {
				return fmt.Errorf("%w: %w", errs.ErrOutputWrite, err)
			}
			if opts.output != "" && opts.output != "-" {
				printSuccess(cmd.ErrOrStderr(), "Wrote "+opts.output)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "output file (- for stdout)")
	cmd.Flags().StringVar(&opts.compression, "compression", "none", "compression the file was written with")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG with Graphviz instead of emitting DOT")
	cmd.Flags().BoolVar(&opts.text, "text", false, "include text nodes")
	cmd.Flags().BoolVar(&opts.attributes, "attributes", false, "list attribute keys in node labels")
	cmd.Flags().IntVar(&opts.maxLabel, "max-label", 24, "truncate text labels to this many characters")

	return cmd
}

// renderSVG lays out a DOT graph with the embedded Graphviz engine.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
