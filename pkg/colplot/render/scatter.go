// Package render draws scatter charts with go-chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an image encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ErrUnsupportedFormat indicates an output extension with no renderer.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SeriesColors are the marker colors for the low, average and high series.
var SeriesColors = []drawing.Color{chart.ColorBlue, chart.ColorRed, chart.ColorGreen}

// FormatFromPath selects the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".svg":
		return SVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Series is one set of scatter points.
type Series struct {
	Name    string
	XValues []float64
	YValues []float64
	Color   drawing.Color
}

// ScatterSpec describes a scatter chart.
type ScatterSpec struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
	// XRange and YRange are [min, max] axis bounds.
	XRange [2]float64
	YRange [2]float64
	Series []Series
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// HexColor formats a color as #rrggbb.
func HexColor(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// AxisRange returns a drawable range. A zero-span range is widened by one
// unit on each side.
func AxisRange(lo, hi float64) (float64, float64) {
	if hi <= lo {
		return lo - 1, lo + 1
	}
	return lo, hi
}

// Scatter renders s to w.
func Scatter(w io.Writer, format Format, s ScatterSpec) error {
	var provider chart.RendererProvider
	switch format {
	case PNG:
		provider = chart.PNG
	case SVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	series := make([]chart.Series, 0, len(s.Series))
	for _, sr := range s.Series {
		if len(sr.XValues) != len(sr.YValues) {
			return fmt.Errorf("series %q: %d x values, %d y values", sr.Name, len(sr.XValues), len(sr.YValues))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    sr.Name,
			Style:   pointStyle(sr.Color),
			XValues: sr.XValues,
			YValues: sr.YValues,
		})
	}

	xMin, xMax := AxisRange(s.XRange[0], s.XRange[1])
	yMin, yMax := AxisRange(s.YRange[0], s.YRange[1])

	ch := chart.Chart{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: s.XLabel, Range: &chart.ContinuousRange{Min: xMin, Max: xMax}},
		YAxis:      chart.YAxis{Name: s.YLabel, Range: &chart.ContinuousRange{Min: yMin, Max: yMax}},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
