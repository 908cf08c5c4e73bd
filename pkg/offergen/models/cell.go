// Package models defines data structures for workbook extraction and document generation.
package models

// CellInfo describes a single cell looked up by coordinate.
type CellInfo struct {
	// Sheet is the sheet the cell was read from.
	Sheet string `json:"sheet"`
	// Coordinate is the A1-style cell reference.
	Coordinate string `json:"coordinate"`
	// Value is the typed cell value (nil for an empty cell).
	Value any `json:"value"`
	// Type is the Go type name of Value ("string", "float64", "time.Time", ...).
	Type string `json:"type"`
}
