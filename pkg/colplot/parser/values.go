// Package parser provides readers for delimited text and xlsx sources.
package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldError represents a field that could not be converted to a number.
type FieldError struct {
	// Line is the 1-based line (or sheet row) of the record.
	Line int
	// Column is the zero-based column in the source record.
	Column int
	// Value is the raw field text.
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d, column %d: %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// WidthError represents a requested column that a record does not have.
type WidthError struct {
	Line   int
	Column int
	Width  int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("line %d: column %d out of range for %d fields", e.Line, e.Column, e.Width)
}

// ParseNumber converts a field to float64.
// Surrounding whitespace and quotes are ignored.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\""))
	return strconv.ParseFloat(s, 64)
}

// SelectRow converts the requested fields of a record, in request order.
func SelectRow(record []string, columns []int, line int) ([]float64, error) {
	row := make([]float64, len(columns))
	for i, col := range columns {
		if col < 0 || col >= len(record) {
			return nil, &WidthError{Line: line, Column: col, Width: len(record)}
		}
		v, err := ParseNumber(record[col])
		if err != nil {
			return nil, &FieldError{Line: line, Column: col, Value: record[col], Err: err}
		}
		row[i] = v
	}
	return row, nil
}

// SelectHeader returns the header names of the requested columns.
// Columns missing from the header get an empty name.
func SelectHeader(header []string, columns []int) []string {
	names := make([]string, len(columns))
	for i, col := range columns {
		if col >= 0 && col < len(header) {
			names[i] = strings.TrimSpace(header[col])
		}
	}
	return names
}
