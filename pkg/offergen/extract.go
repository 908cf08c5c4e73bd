package offergen

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
	"github.com/ukaji3/offergen-go/pkg/offergen/parser"
)

// Extract reads the requested sheets of a workbook into variables.
// A missing sheet is recorded in WorkbookData.Missing and the remaining
// sheets are still read; an unreadable workbook aborts with a *ResourceError.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	log := opts.logger()

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.WorkbookData{
		BookName: filepath.Base(path),
		Sheets:   make(map[string]models.SheetData),
	}

	for _, sheetName := range opts.SheetNames() {
		sheet, err := extractSheet(f, sheetName, opts.ShapeOf(sheetName))
		var missing *SheetNotFoundError
		if errors.As(err, &missing) {
			log.Warn("sheet not found", zap.String("workbook", wb.BookName), zap.String("sheet", sheetName))
			wb.Missing = append(wb.Missing, sheetName)
			continue
		}
		if err != nil {
			return nil, &ResourceError{Path: path, Err: err}
		}
		log.Debug("sheet extracted",
			zap.String("sheet", sheetName),
			zap.String("shape", string(sheet.Shape)),
			zap.Int("variables", len(sheet.Variables)))
		wb.Sheets[sheetName] = sheet
	}

	return wb, nil
}

// Scan reads every non-blank text cell of one sheet, keyed by coordinate.
// An empty sheet name selects the workbook's active sheet.
func Scan(path, sheetName string) (*models.SheetData, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}
	sheet, err := extractSheet(f, sheetName, models.ShapeGeneric)
	if err != nil {
		var missing *SheetNotFoundError
		if errors.As(err, &missing) {
			return nil, err
		}
		return nil, &ResourceError{Path: path, Err: err}
	}
	return &sheet, nil
}

// Inspect reads one cell by coordinate. An empty sheet name selects the active sheet.
func Inspect(path, sheetName, coordinate string) (*models.CellInfo, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}
	v, err := parser.ReadCell(f, sheetName, coordinate)
	if errors.Is(err, parser.ErrSheetNotFound) {
		return nil, &SheetNotFoundError{Sheet: sheetName}
	}
	if err != nil {
		return nil, err
	}

	info := &models.CellInfo{Sheet: sheetName, Coordinate: coordinate, Value: v, Type: "empty"}
	if v != nil {
		info.Type = reflect.TypeOf(v).String()
	}
	return info, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, &ResourceError{Path: path, Err: ErrFileNotFound}
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	return f, nil
}

func extractSheet(f *excelize.File, sheetName string, shape models.Shape) (models.SheetData, error) {
	grid, err := parser.ReadGrid(f, sheetName)
	if errors.Is(err, parser.ErrSheetNotFound) {
		return models.SheetData{}, &SheetNotFoundError{Sheet: sheetName}
	}
	if err != nil {
		return models.SheetData{}, err
	}

	sheet := models.SheetData{
		Name:  sheetName,
		Shape: shape,
		Range: parser.DataRange(grid),
	}
	switch shape {
	case models.ShapeKeyValue:
		sheet.Variables = parser.ExtractKeyValue(grid)
	case models.ShapeTabular:
		sheet.Headers, sheet.Variables = parser.ExtractTabular(grid)
	default:
		sheet.Variables = parser.ScanText(grid)
	}
	return sheet, nil
}
