package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook with a small temperature table at B3.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B3", "Year")
	f.SetCellValue(sheetName, "C3", "Month")
	f.SetCellValue(sheetName, "D3", "High")
	f.SetCellValue(sheetName, "B4", 1995)
	f.SetCellValue(sheetName, "C4", 8)
	f.SetCellValue(sheetName, "D4", 27.1)
	f.SetCellValue(sheetName, "B5", 1996)
	f.SetCellValue(sheetName, "C5", 8)
	f.SetCellValue(sheetName, "D5", 26.4)

	tmpFile := filepath.Join(t.TempDir(), "temps.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

func openWorkbook(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReadSheet(t *testing.T) {
	f := openWorkbook(t, writeWorkbook(t))

	sheet, err := ReadSheet(f, "", "")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	if sheet.Name != "Sheet1" {
		t.Errorf("Expected Sheet1, got %s", sheet.Name)
	}
	if sheet.Region.String() != "B3:D5" {
		t.Errorf("Expected region B3:D5, got %s", sheet.Region)
	}
	if len(sheet.Cells) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(sheet.Cells))
	}
	if sheet.Cells[0][0] != "Year" {
		t.Errorf("Expected 'Year', got %q", sheet.Cells[0][0])
	}
	if sheet.Line(1) != 4 {
		t.Errorf("Expected first data row on line 4, got %d", sheet.Line(1))
	}
}

func TestSheetColumns(t *testing.T) {
	f := openWorkbook(t, writeWorkbook(t))

	sheet, err := ReadSheet(f, "Sheet1", "")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	header, rows, err := SheetColumns(sheet, []int{2, 0})
	if err != nil {
		t.Fatalf("SheetColumns failed: %v", err)
	}
	if header[0] != "High" || header[1] != "Year" {
		t.Errorf("Unexpected header: %v", header)
	}
	expected := [][]float64{{27.1, 1995}, {26.4, 1996}}
	for i, row := range expected {
		for j, v := range row {
			if rows[i][j] != v {
				t.Errorf("Row %d col %d: expected %v, got %v", i, j, v, rows[i][j])
			}
		}
	}
}

func TestReadSheetRange(t *testing.T) {
	f := openWorkbook(t, writeWorkbook(t))

	sheet, err := ReadSheet(f, "", "B3:C4")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if len(sheet.Cells) != 2 || len(sheet.Cells[0]) != 2 {
		t.Errorf("Expected a 2x2 region, got %v", sheet.Cells)
	}
}

func TestReadSheetMissing(t *testing.T) {
	f := openWorkbook(t, writeWorkbook(t))

	_, err := ReadSheet(f, "NoSuchSheet", "")
	var sheetErr excelize.ErrSheetNotExist
	if !errors.As(err, &sheetErr) {
		t.Errorf("Expected ErrSheetNotExist, got %v", err)
	}
}

func TestSheetColumnsFieldError(t *testing.T) {
	sheet := &Sheet{
		Name:   "Sheet1",
		Region: Region{R1: 1, C1: 1, R2: 3, C2: 2},
		Cells:  [][]string{{"a", "b"}, {"1", "2"}, {"3", "x"}},
	}

	_, _, err := SheetColumns(sheet, []int{0, 1})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("Expected FieldError, got %v", err)
	}
	if fieldErr.Line != 3 {
		t.Errorf("Expected line 3, got %d", fieldErr.Line)
	}
}

func TestSheetColumnsFormattedNumbers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Year")
	f.SetCellValue(sheetName, "B1", "Amount")
	f.SetCellValue(sheetName, "A2", 1995)
	f.SetCellValue(sheetName, "B2", 1234567.5)

	// #,##0.00
	style, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "B2", "B2", style); err != nil {
		t.Fatalf("Failed to set style: %v", err)
	}

	path := filepath.Join(t.TempDir(), "formatted.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	sheet, err := ReadSheet(openWorkbook(t, path), "", "")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	header, rows, err := SheetColumns(sheet, []int{0, 1})
	if err != nil {
		t.Fatalf("SheetColumns failed: %v", err)
	}

	if header[1] != "Amount" {
		t.Errorf("Expected header 'Amount', got %q", header[1])
	}
	if len(rows) != 1 || rows[0][0] != 1995 || rows[0][1] != 1234567.5 {
		t.Errorf("Expected [[1995 1234567.5]], got %v", rows)
	}
}
