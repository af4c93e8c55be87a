package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/colplot-go/pkg/colplot/models"
)

// FormatOptions controls text rendering of numbers.
type FormatOptions struct {
	// Suppress prints fixed-point decimals instead of scientific notation.
	Suppress bool
	// Precision is the number of decimals; -1 uses the fewest digits that
	// represent the value exactly.
	Precision int
}

// DefaultFormatOptions returns fixed-point formatting with shortest precision.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Suppress: true, Precision: -1}
}

// FormatNumber formats a single value.
func FormatNumber(v float64, opts FormatOptions) string {
	if opts.Suppress {
		return strconv.FormatFloat(v, 'f', opts.Precision, 64)
	}
	return strconv.FormatFloat(v, 'g', opts.Precision, 64)
}

// FormatValues formats values as a space-separated bracketed list.
func FormatValues(values []float64, opts FormatOptions) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v, opts)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatTable writes t as right-aligned columns, header first when present.
func FormatTable(w io.Writer, t *models.Table, opts FormatOptions) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	if len(t.Header) > 0 {
		if _, err := fmt.Fprintln(tw, strings.Join(t.Header, "\t")+"\t"); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = FormatNumber(v, opts)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// FormatBounds formats axis bounds as (x_min, x_max, y_min, y_max).
func FormatBounds(b models.AxisBounds, opts FormatOptions) string {
	return fmt.Sprintf("(%s, %s, %s, %s)",
		FormatNumber(b.XMin, opts), FormatNumber(b.XMax, opts),
		FormatNumber(b.YMin, opts), FormatNumber(b.YMax, opts))
}

// FormatSummaries writes one aligned line per column summary.
func FormatSummaries(w io.Writer, summaries []models.ColumnSummary, opts FormatOptions) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tname\tcount\tmin\tmax\tmean\tstd_dev")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			s.Column, s.Name, s.Count,
			FormatNumber(s.Min, opts), FormatNumber(s.Max, opts),
			FormatNumber(s.Mean, opts), FormatNumber(s.StdDev, opts))
	}
	return tw.Flush()
}
