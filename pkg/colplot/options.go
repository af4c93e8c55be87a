// Package colplot reads numeric columns from delimited text or xlsx files,
// computes summary statistics over them and renders scatter plots.
package colplot

import (
	"path/filepath"
	"strings"
)

// Format represents the source file format.
type Format string

const (
	// FormatAuto selects the format from the file extension.
	FormatAuto Format = "auto"
	// FormatDelimited reads delimiter-separated text.
	FormatDelimited Format = "delimited"
	// FormatXLSX reads a worksheet of an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// Options configures how source files are read.
type Options struct {
	// Delimiter is the field separator for delimited text.
	Delimiter rune
	// Format selects the reader. FormatAuto (or empty) inspects the extension.
	Format Format
	// Sheet is the worksheet name for xlsx sources. Empty selects the first sheet.
	Sheet string
	// Range restricts xlsx reading to a cell range such as "A1:E120".
	// Empty uses the bounding box of non-empty cells.
	Range string
}

// DefaultOptions returns default read options.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Format:    FormatAuto,
	}
}

// ResolveFormat returns the concrete format used for path.
func (o Options) ResolveFormat(path string) Format {
	switch o.Format {
	case FormatDelimited, FormatXLSX:
		return o.Format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	}
	return FormatDelimited
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// PlotOptions configures the scatter plot.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height are the image size in pixels. Zero uses the defaults.
	Width  int
	Height int
	// SeriesNames label the three y-series in the legend.
	SeriesNames [3]string
}

// DefaultPlotOptions returns default plot options.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:       800,
		Height:      600,
		SeriesNames: [3]string{"Low", "Average", "High"},
	}
}
