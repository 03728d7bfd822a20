// Package cli implements the canopyc command-line interface.
//
// # Commands
//
//   - encode: Tokenize HTML and write the encoded document
//   - inspect: Summarize or dump an encoded document
//   - dot: Export the element graph as Graphviz DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr so that encode can stream the document to stdout. Loggers are passed
// through context.Context.
//
// # Configuration
//
// --config points at an optional TOML file (see Config). Flags given on the
// command line override the file.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/canopy-tools/canopy/compress"
	"github.com/canopy-tools/canopy/format"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// It is typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOpts holds the persistent flags and the loaded config file.
type rootOpts struct {
	verbose    bool
	configPath string
	config     Config
}

// Execute runs the canopyc CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:           "canopyc",
		Short:         "canopyc encodes HTML into a compact binary graph",
		Long:          `canopyc tokenizes HTML and encodes the event stream into a columnar binary graph of element keys, attribute keys, text runs and edges.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.config = cfg

			level := charmlog.InfoLevel
			if opts.verbose || (cfg.Verbose && !cmd.Flags().Changed("verbose")) {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("canopyc %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file")

	root.AddCommand(newEncodeCmd(opts))
	root.AddCommand(newInspectCmd(opts))
	root.AddCommand(newDotCmd(opts))

	return root
}

// compressionFor resolves the compression flag, falling back to the config file.
func (o *rootOpts) compressionFor(cmd *cobra.Command, flag string) (format.CompressionType, error) {
	name := flag
	if !cmd.Flags().Changed("compression") && o.config.Compression != "" {
		name = o.config.Compression
	}

	return format.ParseCompressionType(name)
}

// readDocument reads an encoded document from path ("-" for stdin) and
// undoes the given compression.
func readDocument(cmd *cobra.Command, path string, ct format.CompressionType) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	data, err = compress.Decompress(ct, data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
