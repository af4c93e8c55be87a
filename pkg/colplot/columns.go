package colplot

import "github.com/ukaji3/colplot-go/pkg/colplot/models"

func checkTable(t *models.Table) error {
	if t == nil {
		return invalidInput("nil table")
	}
	return nil
}

// checkColumns reports a BoundaryError for any column outside the table
// width or missing from a short row.
func checkColumns(t *models.Table, columns ...int) error {
	for _, c := range columns {
		if c < 0 || c >= t.Width {
			return NewBoundaryError(c, t.Width)
		}
	}

	// Ragged rows
	for _, row := range t.Rows {
		for _, c := range columns {
			if c >= len(row) {
				return NewBoundaryError(c, len(row))
			}
		}
	}
	return nil
}

// flatten returns every value of the given columns, row by row.
func flatten(t *models.Table, columns []int) []float64 {
	values := make([]float64, 0, len(t.Rows)*len(columns))
	for _, row := range t.Rows {
		for _, c := range columns {
			values = append(values, row[c])
		}
	}
	return values
}
