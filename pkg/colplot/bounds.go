package colplot

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/ukaji3/colplot-go/pkg/colplot/models"
)

// PaddingFraction is the share of the data range added beyond each extreme.
const PaddingFraction = 0.1

// AxisBoundsFor derives plot bounds from the values in xColumns and
// yColumns. Each axis is padded outward by PaddingFraction of its range,
// then the minimum is floored and the maximum ceiled.
func AxisBoundsFor(t *models.Table, xColumns, yColumns []int) (models.AxisBounds, error) {
	if err := checkTable(t); err != nil {
		return models.AxisBounds{}, err
	}
	if len(xColumns) == 0 || len(yColumns) == 0 {
		return models.AxisBounds{}, invalidInput("axis bounds need at least one x and one y column")
	}
	if err := checkColumns(t, xColumns...); err != nil {
		return models.AxisBounds{}, err
	}
	if err := checkColumns(t, yColumns...); err != nil {
		return models.AxisBounds{}, err
	}
	if t.Len() == 0 {
		return models.AxisBounds{}, invalidInput("axis bounds of a table with no rows")
	}

	xMin, xMax := padded(flatten(t, xColumns))
	yMin, yMax := padded(flatten(t, yColumns))
	return models.AxisBounds{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}, nil
}

func padded(values []float64) (lo, hi float64) {
	lowest, highest := stats.Bounds(values)
	pad := (highest - lowest) * PaddingFraction
	return math.Floor(lowest - pad), math.Ceil(highest + pad)
}
