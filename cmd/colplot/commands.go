package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/colplot-go/pkg/colplot"
	"github.com/ukaji3/colplot-go/pkg/colplot/models"
	"github.com/ukaji3/colplot-go/pkg/colplot/output"
)

// tableFlags select the columns loaded from the input file.
type tableFlags struct {
	columns  []int
	suppress bool
}

func (tf *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVarP(&tf.columns, "columns", "c", nil, "Source columns to load (default: all)")
	cmd.Flags().BoolVar(&tf.suppress, "suppress", true, "Print fixed-point numbers instead of scientific notation")
}

func (tf *tableFlags) formatOptions() output.FormatOptions {
	opts := output.DefaultFormatOptions()
	opts.Suppress = tf.suppress
	return opts
}

// loadTable reads the selected columns of path. Without explicit columns
// every header column is loaded.
func loadTable(g *globalFlags, tf *tableFlags, path string, log *logrus.Logger) (*models.Table, error) {
	opts, err := g.readOptions()
	if err != nil {
		return nil, err
	}

	// Default to every header column
	columns := tf.columns
	if len(columns) == 0 {
		header, err := colplot.ReadHeader(path, opts)
		if err != nil {
			return nil, err
		}
		columns = make([]int, len(header))
		for i := range header {
			columns[i] = i
		}
	}

	t, err := colplot.LoadColumns(path, columns, opts)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"file": path, "rows": t.Len(), "columns": columns}).Debug("table loaded")
	return t, nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newHeaderCmd(g *globalFlags, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "header FILE",
		Short: "Print the column names in the first line of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.readOptions()
			if err != nil {
				return err
			}
			header, err := colplot.ReadHeader(args[0], opts)
			if err != nil {
				return err
			}
			log.WithField("file", args[0]).Debugf("read %d header fields", len(header))

			if g.json {
				return writeJSON(cmd.OutOrStdout(), header, g.pretty)
			}
			for i, name := range header {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, name)
			}
			return nil
		},
	}
}

func newLoadCmd(g *globalFlags, log *logrus.Logger) *cobra.Command {
	tf := &tableFlags{}
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Print the selected columns as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(g, tf, args[0], log)
			if err != nil {
				return err
			}
			// Write workbook instead of printing
			if xlsxPath != "" {
				if err := output.WriteXLSX(t, xlsxPath, g.sheet); err != nil {
					return fmt.Errorf("failed to write workbook: %w", err)
				}
				log.WithField("file", xlsxPath).Info("workbook written")
				return nil
			}
			return printTable(cmd.OutOrStdout(), g, tf, t)
		},
	}
	tf.register(cmd)
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write the table to an xlsx workbook instead of stdout")
	return cmd
}

func printTable(w io.Writer, g *globalFlags, tf *tableFlags, t *models.Table) error {
	if g.json {
		return writeJSON(w, t, g.pretty)
	}
	return output.FormatTable(w, t, tf.formatOptions())
}

func newMeanCmd(g *globalFlags, log *logrus.Logger) *cobra.Command {
	tf := &tableFlags{}
	var of []int

	cmd := &cobra.Command{
		Use:   "mean FILE",
		Short: "Print the mean of table columns across all rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(g, tf, args[0], log)
			if err != nil {
				return err
			}
			columns := of
			if len(columns) == 0 {
				columns = allColumns(t)
			}
			means, err := colplot.ColumnMeans(t, columns)
			if err != nil {
				return err
			}
			if g.json {
				return writeJSON(cmd.OutOrStdout(), means, g.pretty)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output.FormatValues(means, tf.formatOptions()))
			return err
		},
	}
	tf.register(cmd)
	cmd.Flags().IntSliceVar(&of, "of", nil, "Table columns to average (default: all)")
	return cmd
}

func newFilterCmd(g *globalFlags, log *logrus.Logger) *cobra.Command {
	tf := &tableFlags{}
	var (
		column       int
		lower, upper float64
	)

	cmd := &cobra.Command{
		Use:   "filter FILE",
		Short: "Print rows whose column value lies in an inclusive range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(g, tf, args[0], log)
			if err != nil {
				return err
			}
			filtered, err := colplot.FilterRange(t, column, lower, upper)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"kept": filtered.Len(), "total": t.Len()}).Debug("rows filtered")
			return printTable(cmd.OutOrStdout(), g, tf, filtered)
		},
	}
	tf.register(cmd)
	cmd.Flags().IntVar(&column, "column", 0, "Table column to test")
	cmd.Flags().Float64Var(&lower, "lower", 0, "Inclusive lower bound")
	cmd.Flags().Float64Var(&upper, "upper", 0, "Inclusive upper bound")
	cmd.MarkFlagRequired("lower")
	cmd.MarkFlagRequired("upper")
	return cmd
}

func newBoundsCmd(g *globalFlags, log *logrus.Logger) *cobra.Command {
	tf := &tableFlags{}
	var xColumns, yColumns []int

	cmd := &cobra.Command{
		Use:   "bounds FILE",
		Short: "Print padded axis bounds (x_min, x_max, y_min, y_max)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(g, tf, args[0], log)
			if err != nil {
				return err
			}
			b, err := colplot.AxisBoundsFor(t, xColumns, yColumns)
			if err != nil {
				return err
			}
			if g.json {
				return writeJSON(cmd.OutOrStdout(), b, g.pretty)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output.FormatBounds(b, tf.formatOptions()))
			return err
		},
	}
	tf.register(cmd)
	cmd.Flags().IntSliceVarP(&xColumns, "x-columns", "x", []int{0}, "Table columns for the x axis")
	cmd.Flags().IntSliceVarP(&yColumns, "y-columns", "y", nil, "Table columns for the y axis")
	cmd.MarkFlagRequired("y-columns")
	return cmd
}

func newDescribeCmd(g *globalFlags, log *logrus.Logger) *cobra.Command {
	tf := &tableFlags{}

	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "Print count, min, max, mean and standard deviation per column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(g, tf, args[0], log)
			if err != nil {
				return err
			}
			summaries, err := colplot.Describe(t, allColumns(t))
			if err != nil {
				return err
			}
			if g.json {
				return writeJSON(cmd.OutOrStdout(), summaries, g.pretty)
			}
			return output.FormatSummaries(cmd.OutOrStdout(), summaries, tf.formatOptions())
		},
	}
	tf.register(cmd)
	return cmd
}

func allColumns(t *models.Table) []int {
	columns := make([]int, t.Width)
	for i := range columns {
		columns[i] = i
	}
	return columns
}
