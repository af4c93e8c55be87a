package colplot

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist or cannot be opened.
var ErrFileNotFound = errors.New("file not found")

// ErrParse indicates a field expected to be numeric could not be converted.
var ErrParse = errors.New("parse error")

// ErrBoundary indicates a column index is out of range for the table width.
var ErrBoundary = errors.New("column index out of range")

// ErrInvalidInput indicates an operation was called on a structurally invalid input.
var ErrInvalidInput = errors.New("invalid input")

// ParseError represents a numeric conversion failure while loading a table.
type ParseError struct {
	File   string
	Line   int // 1-based line (or sheet row) in the source
	Column int // zero-based source column
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: column %d: cannot parse %q as number: %v", e.File, e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse so callers can match the category with errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// BoundaryError represents a column index that does not fit the table.
type BoundaryError struct {
	Column int
	Width  int
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("column %d out of range for width %d", e.Column, e.Width)
}

func (e *BoundaryError) Unwrap() error {
	return ErrBoundary
}

// NewBoundaryError creates a new BoundaryError.
func NewBoundaryError(column, width int) *BoundaryError {
	return &BoundaryError{
		Column: column,
		Width:  width,
	}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
