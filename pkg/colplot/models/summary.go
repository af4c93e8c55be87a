package models

// ColumnSummary holds descriptive statistics for a single column.
type ColumnSummary struct {
	// Column is the zero-based column index in the table.
	Column int `json:"column"`
	// Name is the header name when the table has one.
	Name   string  `json:"name,omitempty"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}
