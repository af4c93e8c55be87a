package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrRange indicates a malformed cell range reference.
var ErrRange = errors.New("invalid cell range")

// Region represents cell coordinate bounds of a sheet region.
// All fields are 1-based and inclusive.
type Region struct {
	R1, C1 int
	R2, C2 int
}

// String returns the region in A1:B2 notation.
func (r Region) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return fmt.Sprintf("%s:%s", start, end)
}

// ParseRange parses a range string like $A$1:$D$10 or Sheet1!A1:D10.
func ParseRange(ref string) (Region, error) {
	// Strip the sheet prefix
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	// Remove $ signs
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return Region{}, fmt.Errorf("%w: %q", ErrRange, ref)
	}

	// Parse both corners
	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Region{}, fmt.Errorf("%w: %w", ErrRange, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Region{}, fmt.Errorf("%w: %w", ErrRange, err)
	}

	// Normalize inverted ranges
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	return Region{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// DataRegion finds the bounding box of non-empty cells.
// ok is false when every cell is empty.
func DataRegion(rows [][]string) (region Region, ok bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return Region{}, false
	}
	return Region{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// Crop returns the cells of rows inside region. Short rows are padded with
// empty strings so every returned row has the region's width.
func Crop(rows [][]string, region Region) [][]string {
	width := region.C2 - region.C1 + 1
	var out [][]string
	for rowIdx := region.R1 - 1; rowIdx < region.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cells := make([]string, width)
		for colIdx := region.C1 - 1; colIdx < region.C2 && colIdx < len(row); colIdx++ {
			cells[colIdx-region.C1+1] = row[colIdx]
		}
		out = append(out, cells)
	}
	return out
}
