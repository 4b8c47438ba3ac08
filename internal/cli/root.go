// Package cli implements the tablegrid command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/tablegrid"
)

// OutputGrid renders every table through the Formatter. Any other output
// value is a [tablegrid.Format] applied to each table in turn.
const OutputGrid = "grid"

var errNoInput = errors.New("no layout given: pass a file or pipe one on stdin")

type options struct {
	horizontal int
	padding    int
	sort       bool
	output     string
}

// NewRootCommand returns the tablegrid command.
func NewRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "tablegrid [file]",
		Short: "Render tables as centered ASCII grids",
		Long: `tablegrid reads a YAML or JSON layout document and prints its tables
side by side in bands, each band centered under the one above it.

Without a file argument the layout is read from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.horizontal, "horizontal", "n", 1, "Tables per band")
	cmd.Flags().IntVarP(&opts.padding, "padding", "p", 1, "Spaces between tables in a band")
	cmd.Flags().BoolVarP(&opts.sort, "sort", "s", false, "Sort each band by descending row count")
	cmd.Flags().StringVarP(&opts.output, "output", "o", OutputGrid, "Output (grid|text|csv|tsv|markdown|html|json|yaml|go-template=...)")
	return cmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func run(cmd *cobra.Command, args []string, opts options) error {
	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	layout, err := tablegrid.DecodeLayout(in)
	if err != nil {
		return err
	}

	var extra []tablegrid.Option
	flags := cmd.Flags()
	if flags.Changed("horizontal") {
		extra = append(extra, tablegrid.WithHorizontalCount(opts.horizontal))
	}
	if flags.Changed("padding") {
		extra = append(extra, tablegrid.WithTablePadding(opts.padding))
	}
	if flags.Changed("sort") {
		extra = append(extra, tablegrid.WithPreserveOrder(!opts.sort))
	}

	f, err := layout.Formatter(extra...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output == OutputGrid {
		_, err := f.WriteTo(out)
		return err
	}
	format, err := tablegrid.ParseFormat(opts.output)
	if err != nil {
		return err
	}
	return exportAll(out, f.Tables(), format)
}

func exportAll(w io.Writer, tables []*tablegrid.Table, format tablegrid.Format) error {
	if len(tables) == 0 {
		return tablegrid.ErrNoTables
	}
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := tablegrid.Export(w, t, format); err != nil {
			return err
		}
	}
	return nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil, errNoInput
	}
	return in, func() {}, nil
}
