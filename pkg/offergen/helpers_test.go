package offergen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook with the given sheets (name to cell values)
// and returns its path. Sheet1 is removed unless it is requested.
func writeWorkbook(t *testing.T, sheets map[string]map[string]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, cells := range sheets {
		if name != "Sheet1" {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for ref, v := range cells {
			require.NoError(t, f.SetCellValue(name, ref, v))
		}
	}
	if _, ok := sheets["Sheet1"]; !ok {
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}

	path := filepath.Join(t.TempDir(), "procedura.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
