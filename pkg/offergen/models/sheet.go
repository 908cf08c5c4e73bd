package models

// Shape is the layout convention a sheet is read with.
type Shape string

const (
	// ShapeKeyValue reads values from column C, names from column E and flags from column D.
	ShapeKeyValue Shape = "key_value"
	// ShapeTabular reads row 1 as headers and every following row as a record.
	ShapeTabular Shape = "tabular"
	// ShapeGeneric reads every non-blank text cell keyed by its coordinate.
	ShapeGeneric Shape = "generic"
)

// SheetData represents the variables extracted from a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Shape is the convention the sheet was read with.
	Shape Shape `json:"shape"`
	// Range is the bounding range of non-blank cells (e.g. "A1:F12").
	Range string `json:"range,omitempty"`
	// Headers lists the tabular column keys in column order (tabular sheets only).
	Headers []string `json:"headers,omitempty"`
	// Variables contains the extracted variables in sheet order.
	Variables []Variable `json:"variables"`
}

// Scalars returns the value and flag variables of the sheet.
func (s SheetData) Scalars() []Variable {
	var out []Variable
	for _, v := range s.Variables {
		if v.Scalar() {
			out = append(out, v)
		}
	}
	return out
}

// Records returns the row variables of the sheet.
func (s SheetData) Records() []Variable {
	var out []Variable
	for _, v := range s.Variables {
		if v.Kind == KindRow {
			out = append(out, v)
		}
	}
	return out
}

// Record returns the row variable for a 1-based sheet row.
func (s SheetData) Record(row int) (Variable, bool) {
	for _, v := range s.Variables {
		if v.Kind == KindRow && v.Row == row {
			return v, true
		}
	}
	return Variable{}, false
}
