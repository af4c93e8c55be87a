// Package main provides the CLI entry point for colplot.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/colplot-go/pkg/colplot"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	delimiter string
	format    string
	sheet     string
	cellRange string
	logLevel  string
	pretty    bool
	json      bool
}

func main() {
	log := newLogger(os.Stderr, "info")
	if err := newRootCmd(os.Stdout, log).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer, log *logrus.Logger) *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "colplot",
		Short: "Summarize and plot numeric columns of delimited or xlsx files",
		Long: `colplot reads numeric columns from delimited text or Excel files,
computes means, range filters, axis bounds and summaries, and renders
scatter plots to PNG or SVG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if lvl, err := logrus.ParseLevel(g.logLevel); err == nil {
				log.SetLevel(lvl)
			}
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(log.Out)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&g.delimiter, "delimiter", "d", ",", `Field delimiter ("tab" for tabs)`)
	pf.StringVar(&g.format, "format", string(colplot.FormatAuto), "Source format: auto, delimited, xlsx")
	pf.StringVar(&g.sheet, "sheet", "", "Worksheet for xlsx sources (default: first sheet)")
	pf.StringVar(&g.cellRange, "range", "", "Cell range for xlsx sources, e.g. A1:E120")
	pf.StringVar(&g.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&g.pretty, "pretty", false, "Pretty-print JSON output")
	pf.BoolVar(&g.json, "json", false, "Write results as JSON")

	rootCmd.AddCommand(
		newHeaderCmd(g, log),
		newLoadCmd(g, log),
		newMeanCmd(g, log),
		newFilterCmd(g, log),
		newBoundsCmd(g, log),
		newDescribeCmd(g, log),
		newPlotCmd(g, log),
	)

	return rootCmd
}

// readOptions converts the global flags into read options.
func (g *globalFlags) readOptions() (colplot.Options, error) {
	delim, err := parseDelimiter(g.delimiter)
	if err != nil {
		return colplot.Options{}, err
	}

	opts := colplot.DefaultOptions()
	opts.Delimiter = delim
	opts.Sheet = g.sheet
	opts.Range = g.cellRange

	switch colplot.Format(g.format) {
	case colplot.FormatAuto, colplot.FormatDelimited, colplot.FormatXLSX:
		opts.Format = colplot.Format(g.format)
	default:
		return colplot.Options{}, fmt.Errorf("invalid format: %s (must be auto, delimited, or xlsx)", g.format)
	}
	return opts, nil
}
