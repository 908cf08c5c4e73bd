package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// openFixture writes cells into a fresh workbook, saves it and reopens it,
// so tests read exactly what a saved file contains.
func openFixture(t *testing.T, sheetName string, cells map[string]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		if _, err := f.NewSheet(sheetName); err != nil {
			t.Fatalf("NewSheet failed: %v", err)
		}
	}
	for ref, v := range cells {
		if err := f.SetCellValue(sheetName, ref, v); err != nil {
			t.Fatalf("SetCellValue(%s) failed: %v", ref, err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func readFixture(t *testing.T, sheetName string, cells map[string]interface{}) *Grid {
	t.Helper()
	f := openFixture(t, sheetName, cells)
	g, err := ReadGrid(f, sheetName)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}
	return g
}
