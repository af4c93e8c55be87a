package colplot

import "github.com/ukaji3/colplot-go/pkg/colplot/models"

// FilterRange returns the rows whose value in column lies in the inclusive
// range [lower, upper]. Row order is preserved. A table with no matching
// rows is returned with zero rows and the input width.
func FilterRange(t *models.Table, column int, lower, upper float64) (*models.Table, error) {
	if err := checkTable(t); err != nil {
		return nil, err
	}
	if err := checkColumns(t, column); err != nil {
		return nil, err
	}

	out := t.Empty()
	for _, row := range t.Rows {
		if v := row[column]; lower <= v && v <= upper {
			out.Rows = append(out.Rows, models.CopyRow(row))
		}
	}
	return out, nil
}
