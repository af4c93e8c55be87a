// Package models defines data structures for numeric tables and plots.
package models

// Table represents rows of numeric observations sharing a fixed column count.
type Table struct {
	// Header names the columns (optional, len == Width when present).
	Header []string `json:"header,omitempty"`
	// Rows holds observations in insertion order.
	Rows [][]float64 `json:"rows"`
	// Width is the column count. It is kept for zero-row tables.
	Width int `json:"width"`
}

// NewTable creates a table from rows. Width is taken from the first row.
func NewTable(rows [][]float64) *Table {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	return &Table{Rows: rows, Width: width}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns a copy of the values of column i.
func (t *Table) Column(i int) []float64 {
	values := make([]float64, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values
}

// Empty returns a zero-row table with the same width and header.
func (t *Table) Empty() *Table {
	return &Table{
		Header: copyHeader(t.Header),
		Rows:   [][]float64{},
		Width:  t.Width,
	}
}

// Slice returns a copy of rows from start to end (exclusive).
// Negative end means through the last row; out-of-range values are clamped.
func (t *Table) Slice(start, end int) *Table {
	if start < 0 {
		start = 0
	}
	if end < 0 || end > len(t.Rows) {
		end = len(t.Rows)
	}
	if start >= end {
		return t.Empty()
	}

	out := t.Empty()
	for _, row := range t.Rows[start:end] {
		out.Rows = append(out.Rows, CopyRow(row))
	}
	return out
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	return t.Slice(0, -1)
}

// CopyRow returns an independent copy of a row.
func CopyRow(row []float64) []float64 {
	c := make([]float64, len(row))
	copy(c, row)
	return c
}

func copyHeader(h []string) []string {
	if h == nil {
		return nil
	}
	c := make([]string, len(h))
	copy(c, h)
	return c
}
