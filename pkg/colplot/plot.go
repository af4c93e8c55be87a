package colplot

import (
	"fmt"
	"os"

	"github.com/ukaji3/colplot-go/pkg/colplot/models"
	"github.com/ukaji3/colplot-go/pkg/colplot/render"
)

// PlotSeriesCount is the number of y-series a scatter plot draws.
const PlotSeriesCount = 3

// Plot renders a scatter plot of the three yColumns against xColumn of t
// and writes it to path, overwriting any existing file. Axis ranges come
// from AxisBoundsFor. The image format follows the path extension.
func Plot(t *models.Table, xColumn int, yColumns []int, path string, opts PlotOptions) (*models.Chart, error) {
	if err := checkTable(t); err != nil {
		return nil, err
	}
	// Validate series count and output format
	if len(yColumns) != PlotSeriesCount {
		return nil, invalidInput("plot needs exactly %d y columns, got %d", PlotSeriesCount, len(yColumns))
	}
	format, err := render.FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Axis ranges from the plotted columns
	bounds, err := AxisBoundsFor(t, []int{xColumn}, yColumns)
	if err != nil {
		return nil, err
	}

	spec, meta := scatterSpec(t, xColumn, yColumns, bounds, opts)
	meta.Path = path
	meta.Format = string(format)

	// Create or truncate the output file
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrInvalidInput, path, err)
	}
	// Render, removing the partial file on failure
	if err := render.Scatter(f, format, spec); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", path, err)
	}
	return meta, nil
}

func scatterSpec(t *models.Table, xColumn int, yColumns []int, b models.AxisBounds, opts PlotOptions) (render.ScatterSpec, *models.Chart) {
	defaults := DefaultPlotOptions()
	if opts.Width <= 0 {
		opts.Width = defaults.Width
	}
	if opts.Height <= 0 {
		opts.Height = defaults.Height
	}

	xMin, xMax := render.AxisRange(b.XMin, b.XMax)
	yMin, yMax := render.AxisRange(b.YMin, b.YMax)
	spec := render.ScatterSpec{
		Title:  opts.Title,
		XLabel: opts.XLabel,
		YLabel: opts.YLabel,
		Width:  opts.Width,
		Height: opts.Height,
		XRange: [2]float64{xMin, xMax},
		YRange: [2]float64{yMin, yMax},
	}
	meta := &models.Chart{
		Title:      opts.Title,
		XAxisTitle: opts.XLabel,
		YAxisTitle: opts.YLabel,
		XAxisRange: []float64{xMin, xMax},
		YAxisRange: []float64{yMin, yMax},
		W:          opts.Width,
		H:          opts.Height,
	}

	// One series per y column, sharing the x values
	xs := t.Column(xColumn)
	for i, c := range yColumns {
		name := opts.SeriesNames[i]
		if name == "" {
			name = defaults.SeriesNames[i]
		}
		color := render.SeriesColors[i]
		spec.Series = append(spec.Series, render.Series{
			Name:    name,
			XValues: xs,
			YValues: t.Column(c),
			Color:   color,
		})
		meta.Series = append(meta.Series, models.ChartSeries{
			Name:    name,
			XColumn: xColumn,
			YColumn: c,
			Color:   render.HexColor(color),
			Points:  t.Len(),
		})
	}
	return spec, meta
}
