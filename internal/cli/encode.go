package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/canopy-tools/canopy/compress"
	"github.com/canopy-tools/canopy/format"
	"github.com/canopy-tools/canopy/graph"
	"github.com/canopy-tools/canopy/internal/hash"
	"github.com/canopy-tools/canopy/source"
)

// encodeOpts holds the command-line flags for the encode command.
type encodeOpts struct {
	input       string // HTML input path, "-" for stdin
	output      string // document output path, "-" for stdout
	compression string // none, zstd, s2 or lz4
	maxBuffer   int    // per-token byte limit, 0 for none
	keepNulls   bool   // leave NUL bytes inside text runs
}

func newEncodeCmd(root *rootOpts) *cobra.Command {
	opts := encodeOpts{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode HTML into a canopy document",
		Long: `Encode reads HTML, tokenizes it and writes the encoded document.

Input defaults to stdin and output to stdout. When writing to a file, the
document is written to a temporary file first and renamed on success.`,
		Example: `  canopyc encode -i page.html -o page.canopy
  curl -s https://example.com | canopyc encode --compression zstd > page.canopy.zst`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") && root.config.Output != "" {
				opts.output = root.config.Output
			}

			ct, err := root.compressionFor(cmd, opts.compression)
			if err != nil {
				return err
			}

			return runEncode(cmd.Context(), cmd, opts, ct)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "HTML input file (- for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "output file (- for stdout)")
	cmd.Flags().StringVar(&opts.compression, "compression", "none", "compression: none, zstd, s2, lz4")
	cmd.Flags().IntVar(&opts.maxBuffer, "max-token", 0, "maximum bytes per token (0 for unlimited)")
	cmd.Flags().BoolVar(&opts.keepNulls, "keep-nulls", false, "keep NUL bytes inside text runs")

	return cmd
}

func runEncode(ctx context.Context, cmd *cobra.Command, opts encodeOpts, ct format.CompressionType) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var r io.Reader = cmd.InOrStdin()
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var stats compress.Stats
	enc, err := graph.NewEncoder(graph.WithOutput(func(doc []byte) error {
		out, s, err := compress.Compress(ct, doc)
		if err != nil {
			return err
		}
		stats = s

		return writeOutput(cmd.OutOrStdout(), opts.output, out)
	}))
	if err != nil {
		return err
	}

	err = source.Drive(ctx, r, enc,
		source.WithMaxBuffer(opts.maxBuffer),
		source.WithNullCharacters(!opts.keepNulls),
	)
	if err != nil {
		return fmt.Errorf("encode %s: %w", opts.input, err)
	}

	if doc, err := enc.Bytes(); err == nil {
		logger.Debug("document", "bytes", len(doc), "digest", fmt.Sprintf("%016x", hash.Sum(doc)))
	}

	ev := enc.Stats()
	logger.Debug("events",
		"doctypes", ev.Doctypes,
		"start_tags", ev.StartTags,
		"end_tags", ev.EndTags,
		"characters", ev.Characters,
		"comments", ev.Comments,
		"parse_errors", ev.ParseErrors,
	)
	if ct != format.CompressionNone {
		logger.Debug("compressed",
			"algorithm", stats.Algorithm,
			"original", stats.OriginalSize,
			"compressed", stats.CompressedSize,
			"savings", fmt.Sprintf("%.1f%%", stats.SpaceSavings()),
		)
	}

	prog.done(fmt.Sprintf("Encoded %d nodes, %d attributes, %d text runs",
		enc.NodeCount(), enc.AttributeCount(), enc.TextNodeCount()))

	return nil
}
