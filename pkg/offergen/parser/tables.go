package parser

import (
	"fmt"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
	"github.com/xuri/excelize/v2"
)

// DataRange returns the bounding range of non-blank cells (e.g. "A1:D10"), or "" for an empty sheet.
func DataRange(g *Grid) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(g.Rows)
	if minRow < 0 {
		return ""
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-blank cells (0-based, -1 when empty).
func findDataBounds(rows [][]any) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if models.Blank(cell) {
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

	return
}

// rowPopulated reports whether any cell of a row is non-blank.
func rowPopulated(row []any) bool {
	for _, cell := range row {
		if !models.Blank(cell) {
			return true
		}
	}
	return false
}
