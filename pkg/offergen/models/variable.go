package models

import "strconv"

// Kind tags the three shapes a Variable can take.
type Kind string

const (
	// KindValue is a named scalar read from a key/value sheet (or a text cell in the generic path).
	KindValue Kind = "value"
	// KindFlag is a standalone flag cell of a key/value sheet.
	KindFlag Kind = "flag"
	// KindRow is one record of a tabular sheet.
	KindRow Kind = "row"
)

// FlagPrefix prefixes the synthesized name of flag variables.
const FlagPrefix = "flag_"

// Variable is a unit of extracted data.
type Variable struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind Kind `json:"kind"`
	// Name is the variable name (value and flag kinds).
	Name string `json:"name,omitempty"`
	// Coordinate is the A1-style source cell (value and flag kinds).
	Coordinate string `json:"coordinate,omitempty"`
	// Value is the raw typed cell value (value and flag kinds).
	Value any `json:"value,omitempty"`
	// Row is the 1-based sheet row the variable came from.
	Row int `json:"row"`
	// Data maps header to cell value (row kind only).
	Data map[string]any `json:"data,omitempty"`
}

// NewValue returns a value variable.
func NewValue(name, coordinate string, row int, value any) Variable {
	return Variable{Kind: KindValue, Name: name, Coordinate: coordinate, Row: row, Value: value}
}

// NewFlag returns a flag variable named after its row.
func NewFlag(coordinate string, row int, value any) Variable {
	return Variable{Kind: KindFlag, Name: FlagPrefix + strconv.Itoa(row), Coordinate: coordinate, Row: row, Value: value}
}

// NewRow returns a row variable.
func NewRow(row int, data map[string]any) Variable {
	return Variable{Kind: KindRow, Row: row, Data: data}
}

// Scalar reports whether the variable carries a single named value.
func (v Variable) Scalar() bool {
	return v.Kind == KindValue || v.Kind == KindFlag
}
