package models

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData `json:"sheets"`
	// Missing lists requested sheets that the workbook does not contain.
	Missing []string `json:"missing,omitempty"`
}

// Sheet returns the extracted sheet and whether it was present.
func (w *WorkbookData) Sheet(name string) (SheetData, bool) {
	if w == nil {
		return SheetData{}, false
	}
	s, ok := w.Sheets[name]
	return s, ok
}
