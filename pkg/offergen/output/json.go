// Package output serializes extraction results and renders generation reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
)

// ToJSON serializes a workbook extraction.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// ReportToJSON serializes a generation report.
func ReportToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
