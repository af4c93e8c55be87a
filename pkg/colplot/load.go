package colplot

import (
	"github.com/ukaji3/colplot-go/pkg/colplot/models"
	"github.com/ukaji3/colplot-go/pkg/colplot/parser"
)

// LoadColumns reads the requested columns of every record after the header.
// The returned table holds the columns in the order requested.
func LoadColumns(path string, columns []int, opts Options) (*models.Table, error) {
	// Validate the column selection
	if len(columns) == 0 {
		return nil, invalidInput("no columns requested")
	}
	for _, c := range columns {
		if c < 0 {
			return nil, NewBoundaryError(c, 0)
		}
	}

	var (
		header []string
		rows   [][]float64
		err    error
	)
	// Read rows from the source format
	if opts.ResolveFormat(path) == FormatXLSX {
		header, rows, err = loadSheet(path, columns, opts)
	} else {
		header, rows, err = loadDelimited(path, columns, opts)
	}
	if err != nil {
		return nil, err
	}

	return &models.Table{
		Header: header,
		Rows:   rows,
		Width:  len(columns),
	}, nil
}

func loadDelimited(path string, columns []int, opts Options) ([]string, [][]float64, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	header, rows, err := parser.ReadColumns(f, opts.delimiter(), columns)
	if err != nil {
		return nil, nil, readError(path, err)
	}
	return header, rows, nil
}

func loadSheet(path string, columns []int, opts Options) ([]string, [][]float64, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheet, err := parser.ReadSheet(f, opts.Sheet, opts.Range)
	if err != nil {
		return nil, nil, readError(path, err)
	}
	header, rows, err := parser.SheetColumns(sheet, columns)
	if err != nil {
		return nil, nil, readError(path, err)
	}
	return header, rows, nil
}
