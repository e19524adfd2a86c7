// Command gedcom2json converts a GEDCOM file into a hierarchical
// JSON (or YAML) document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robin-pham/gedcom-2-json/decoder"
	"github.com/robin-pham/gedcom-2-json/encoder"
	"github.com/robin-pham/gedcom-2-json/export/yamldoc"
	"github.com/robin-pham/gedcom-2-json/tree"
)

var (
	format   string
	strict   bool
	maxDepth int
)

var rootCmd = &cobra.Command{
	Use:   "gedcom2json <input> <output>",
	Short: "Convert a GEDCOM file into a nested JSON document",
	Long: `gedcom2json reads a line-oriented GEDCOM file, rebuilds the record
hierarchy implied by the level numbers, and writes it as a
pretty-printed JSON array of nested node objects.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1])
	},
}

func init() {
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Reject lines that match no record instead of skipping them")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum allowed nesting level (0 = unlimited)")
}

func run(inputPath, outputPath string) error {
	input, err := os.Open(inputPath) // #nosec G304 -- CLI tool accepts user-provided paths
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer input.Close()

	opts := decoder.DefaultOptions()
	opts.StrictMode = strict
	opts.MaxNestingDepth = maxDepth

	t, err := decoder.DecodeWithOptions(input, opts)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	output, err := os.Create(outputPath) // #nosec G304 -- CLI tool accepts user-provided paths
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer output.Close()

	if err := write(output, t); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	return nil
}

func write(output *os.File, t *tree.Tree) error {
	switch format {
	case "json":
		return encoder.Encode(output, t)
	case "yaml":
		return yamldoc.Write(output, t)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
