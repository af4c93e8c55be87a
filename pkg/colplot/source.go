package colplot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/colplot-go/pkg/colplot/parser"
	"github.com/xuri/excelize/v2"
)

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return f, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook %s: %w", ErrInvalidInput, path, err)
	}
	return f, nil
}

// readError maps parser errors to the package error taxonomy.
func readError(path string, err error) error {
	var fieldErr *parser.FieldError
	var widthErr *parser.WidthError
	var csvErr *csv.ParseError
	var sheetErr excelize.ErrSheetNotExist

	switch {
	case errors.As(err, &fieldErr):
		return &ParseError{
			File:   path,
			Line:   fieldErr.Line,
			Column: fieldErr.Column,
			Value:  fieldErr.Value,
			Err:    fieldErr.Err,
		}
	case errors.As(err, &widthErr):
		return fmt.Errorf("%s:%d: %w", path, widthErr.Line, NewBoundaryError(widthErr.Column, widthErr.Width))
	case errors.As(err, &csvErr):
		return fmt.Errorf("%w: %w", ErrParse, err)
	case errors.As(err, &sheetErr), errors.Is(err, parser.ErrRange), errors.Is(err, parser.ErrEmpty):
		return invalidInput("%s: %v", path, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}
