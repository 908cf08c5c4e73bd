package parser

import (
	"strings"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
	"github.com/xuri/excelize/v2"
)

// SyntheticHeaderPrefix names columns whose header cell is blank.
const SyntheticHeaderPrefix = "col_"

// ExtractTabular reads a tabular sheet: row 1 holds headers and every populated
// row below it becomes one row variable carrying every column, blanks included.
func ExtractTabular(g *Grid) ([]string, []models.Variable) {
	width := g.Width()
	if width == 0 {
		return nil, nil
	}
	headers := Headers(g, width)

	var result []models.Variable
	for row := 2; row <= g.Height(); row++ {
		if !rowPopulated(g.Rows[row-1]) {
			continue
		}
		data := make(map[string]any, len(headers))
		for col, header := range headers {
			data[header] = trimText(g.At(row, col+1))
		}
		result = append(result, models.NewRow(row, data))
	}
	return headers, result
}

// Headers returns the column keys of row 1 for the given width.
// Blank headers become col_<letter>; a repeated header gets _<letter> appended.
func Headers(g *Grid, width int) []string {
	headers := make([]string, width)
	seen := make(map[string]bool, width)
	for col := 1; col <= width; col++ {
		letter, _ := excelize.ColumnNumberToName(col)
		header := strings.TrimSpace(models.Display(g.At(1, col)))
		if header == "" {
			header = SyntheticHeaderPrefix + letter
		}
		if seen[header] {
			header = header + "_" + letter
		}
		seen[header] = true
		headers[col-1] = header
	}
	return headers
}
