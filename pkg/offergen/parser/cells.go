// Package parser provides Excel file parsing utilities.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when a requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Grid holds the typed values of one sheet.
// Values are string, int64, float64, bool, time.Time or nil.
type Grid struct {
	// Sheet is the sheet name.
	Sheet string
	// Rows is indexed [row-1][col-1]; rows are ragged.
	Rows [][]any
}

// At returns the value at a 1-based row and column, nil when out of range.
func (g *Grid) At(row, col int) any {
	if row < 1 || row > len(g.Rows) {
		return nil
	}
	r := g.Rows[row-1]
	if col < 1 || col > len(r) {
		return nil
	}
	return r[col-1]
}

// Height returns the number of rows read.
func (g *Grid) Height() int {
	return len(g.Rows)
}

// Width returns the 1-based index of the rightmost non-blank column.
func (g *Grid) Width() int {
	_, _, _, maxCol := findDataBounds(g.Rows)
	return maxCol + 1
}

// ReadGrid reads every cell of a sheet with its cached (values-only) content.
func ReadGrid(f *excelize.File, sheetName string) (*Grid, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	grid := &Grid{Sheet: sheetName, Rows: make([][]any, len(rows))}
	for rowIdx, row := range rows {
		values := make([]any, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			ref, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			values[colIdx] = typedValue(f, sheetName, ref, raw, date1904)
		}
		grid.Rows[rowIdx] = values
	}

	return grid, nil
}

// ReadCell reads a single cell by coordinate.
func ReadCell(f *excelize.File, sheetName, ref string) (any, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	if _, _, err := excelize.CellNameToCoordinates(ref); err != nil {
		return nil, err
	}
	raw, err := f.GetCellValue(sheetName, ref, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return nil, err
	}
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	return typedValue(f, sheetName, ref, raw, date1904), nil
}

// ScanText returns a variable for every cell holding non-blank text, keyed by coordinate.
// Numeric and date cells are skipped.
func ScanText(g *Grid) []models.Variable {
	var result []models.Variable
	for rowIdx, row := range g.Rows {
		for colIdx, v := range row {
			s, ok := v.(string)
			if !ok || strings.TrimSpace(s) == "" {
				continue
			}
			ref, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			result = append(result, models.NewValue(ref, ref, rowIdx+1, s))
		}
	}
	return result
}

// typedValue converts a raw cell string into its Go value using the cell type and number format.
func typedValue(f *excelize.File, sheetName, ref, raw string, date1904 bool) any {
	if ct, err := f.GetCellType(sheetName, ref); err == nil {
		switch ct {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
			return raw
		case excelize.CellTypeBool:
			return raw == "1" || strings.EqualFold(raw, "true")
		case excelize.CellTypeDate:
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				return t
			}
			return raw
		}
	}

	v := parseValue(raw)
	var serial float64
	switch n := v.(type) {
	case int64:
		serial = float64(n)
	case float64:
		serial = n
	default:
		return v
	}
	if isDateCell(f, sheetName, ref) {
		if t, err := excelize.ExcelDateToTime(serial, date1904); err == nil {
			return t
		}
	}
	return v
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
