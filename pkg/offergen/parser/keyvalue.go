package parser

import (
	"strings"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
	"github.com/xuri/excelize/v2"
)

// Column layout of a key/value sheet (1-based).
const (
	KeyValueValueCol = 3 // C
	KeyValueFlagCol  = 4 // D
	KeyValueNameCol  = 5 // E
	KeyValueFirstRow = 2
)

// ExtractKeyValue reads a key/value sheet.
//
// A value variable is emitted only when both the value cell (C) and the name
// cell (E) are non-blank; a flag variable is emitted for every non-blank D cell
// regardless of C and E. Flags are named after their row.
func ExtractKeyValue(g *Grid) []models.Variable {
	var result []models.Variable
	for row := KeyValueFirstRow; row <= g.Height(); row++ {
		value := g.At(row, KeyValueValueCol)
		name := g.At(row, KeyValueNameCol)
		if !models.Blank(value) && !models.Blank(name) {
			ref, _ := excelize.CoordinatesToCellName(KeyValueValueCol, row)
			result = append(result, models.NewValue(strings.TrimSpace(models.Display(name)), ref, row, trimText(value)))
		}

		if flag := g.At(row, KeyValueFlagCol); !models.Blank(flag) {
			ref, _ := excelize.CoordinatesToCellName(KeyValueFlagCol, row)
			result = append(result, models.NewFlag(ref, row, trimText(flag)))
		}
	}
	return result
}

func trimText(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}
