package colplot

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/ukaji3/colplot-go/pkg/colplot/models"
)

// Describe computes count, bounds, mean and sample standard deviation for
// each requested column.
func Describe(t *models.Table, columns []int) ([]models.ColumnSummary, error) {
	if err := checkTable(t); err != nil {
		return nil, err
	}
	if err := checkColumns(t, columns...); err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, invalidInput("describe a table with no rows")
	}

	summaries := make([]models.ColumnSummary, len(columns))
	for i, c := range columns {
		sample := stats.Sample{Xs: t.Column(c)}
		lo, hi := sample.Bounds()
		summary := models.ColumnSummary{
			Column: c,
			Count:  len(sample.Xs),
			Min:    lo,
			Max:    hi,
			Mean:   sample.Mean(),
		}
		if summary.Count > 1 {
			summary.StdDev = sample.StdDev()
		}
		if c < len(t.Header) {
			summary.Name = t.Header[c]
		}
		summaries[i] = summary
	}
	return summaries, nil
}
