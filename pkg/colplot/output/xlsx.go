package output

import (
	"github.com/ukaji3/colplot-go/pkg/colplot/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet name used when none is given.
const DefaultSheet = "Sheet1"

// WriteXLSX writes t to a new workbook at path. The header, when present,
// occupies the first row.
func WriteXLSX(t *models.Table, path, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return err
		}
	}

	rowNum := 1
	if len(t.Header) > 0 {
		header := make([]interface{}, len(t.Header))
		for i, h := range t.Header {
			header[i] = h
		}
		if err := setRow(f, sheet, rowNum, header); err != nil {
			return err
		}
		rowNum++
	}

	for _, row := range t.Rows {
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := setRow(f, sheet, rowNum, values); err != nil {
			return err
		}
		rowNum++
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
