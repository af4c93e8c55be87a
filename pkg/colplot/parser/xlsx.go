package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet holds the cells of a worksheet region.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Region is the area the cells were taken from.
	Region Region
	// Cells are the region's rows; Cells[0] is the header row.
	Cells [][]string
}

// Line returns the 1-based sheet row of Cells[i].
func (s *Sheet) Line(i int) int {
	return s.Region.R1 + i
}

// ReadSheet reads a worksheet region from an open workbook.
// An empty name selects the first sheet; an empty ref selects the
// bounding box of non-empty cells.
func ReadSheet(f *excelize.File, name, ref string) (*Sheet, error) {
	if name == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, ErrEmpty
		}
		name = list[0]
	}

	// Raw values so number formats such as #,##0.00 do not reach the parser
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	// Explicit range, or the bounding box of non-empty cells
	var region Region
	if ref != "" {
		region, err = ParseRange(ref)
		if err != nil {
			return nil, err
		}
	} else {
		var ok bool
		region, ok = DataRegion(rows)
		if !ok {
			return nil, ErrEmpty
		}
	}

	cells := Crop(rows, region)
	if len(cells) == 0 {
		return nil, ErrEmpty
	}
	return &Sheet{Name: name, Region: region, Cells: cells}, nil
}

// SheetColumns returns the header and requested columns of a sheet,
// skipping the header row. Column indices are relative to the region.
func SheetColumns(s *Sheet, columns []int) (header []string, rows [][]float64, err error) {
	rows = [][]float64{}
	for i, record := range s.Cells[1:] {
		if isBlank(record) {
			continue
		}
		row, err := SelectRow(record, columns, s.Line(i+1))
		if err != nil {
			return nil, nil, fmt.Errorf("sheet %q: %w", s.Name, err)
		}
		rows = append(rows, row)
	}
	return SelectHeader(s.Cells[0], columns), rows, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
