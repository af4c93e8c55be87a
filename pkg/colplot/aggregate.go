package colplot

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/ukaji3/colplot-go/pkg/colplot/models"
)

// ColumnMeans returns the arithmetic mean of each requested column across
// all rows. The result is aligned with columns.
func ColumnMeans(t *models.Table, columns []int) ([]float64, error) {
	if err := checkTable(t); err != nil {
		return nil, err
	}
	if err := checkColumns(t, columns...); err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, invalidInput("mean of a table with no rows")
	}

	means := make([]float64, len(columns))
	for i, c := range columns {
		means[i] = stats.Mean(t.Column(c))
	}
	return means, nil
}
