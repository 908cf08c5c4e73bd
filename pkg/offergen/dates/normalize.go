// Package dates turns the date representations found in procedure workbooks
// into the DD/MM/YYYY form used in letters.
package dates

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Layout is the display layout of every normalized date.
const Layout = "02/01/2006"

// String layouts tried in order.
var parseLayouts = []string{
	"2006-01-02 15:04:05",
	Layout,
	"2006-1-2 15:04:05",
	"2/1/2006",
}

// serialEpoch anchors spreadsheet serial numbers. Serials are offset by two days
// from this anchor: one for 1-based counting and one for the fictitious
// 29/02/1900 spreadsheets count.
var serialEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// maxSerial is 31/12/9999.
const maxSerial = 2958465

// DefaultFields are the name tokens that mark a field as holding a date.
var DefaultFields = []string{"data", "scadenza", "termine"}

// Normalize converts a value to DD/MM/YYYY when it can be read as a date.
// Strings that do not parse pass through unchanged; anything else that is not a
// valid serial day count falls back to its plain string form.
func Normalize(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format(Layout)
	case string:
		for _, layout := range parseLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(x)); err == nil {
				return t.Format(Layout)
			}
		}
		return x
	}

	if serial, ok := toFloat(v); ok {
		if t, err := FromSerial(serial); err == nil {
			return t.Format(Layout)
		}
	}
	return fmt.Sprint(v)
}

// FromSerial converts a spreadsheet serial day count to a date.
func FromSerial(serial float64) (time.Time, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 0 || serial > maxSerial {
		return time.Time{}, fmt.Errorf("dates: serial %v out of range", serial)
	}
	days := int(math.Floor(serial))
	return serialEpoch.AddDate(0, 0, days-2), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Normalizer applies Normalize to the fields that hold dates.
type Normalizer struct {
	// Fields are name tokens matched case-insensitively as substrings.
	Fields []string
}

// New returns a Normalizer for the given name tokens.
func New(fields []string) *Normalizer {
	return &Normalizer{Fields: fields}
}

// IsDateField reports whether a field name contains one of the date tokens.
func (n *Normalizer) IsDateField(name string) bool {
	folder := cases.Fold()
	name = folder.String(name)
	for _, token := range n.Fields {
		if token != "" && strings.Contains(name, folder.String(token)) {
			return true
		}
	}
	return false
}

// Apply returns the value to store under name in a context.
// Native dates are always formatted; strings and numbers only when the
// name is a date field.
func (n *Normalizer) Apply(name string, v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format(Layout)
	}
	if n == nil || !n.IsDateField(name) {
		return v
	}
	switch v.(type) {
	case string, int, int32, int64, float32, float64:
		return Normalize(v)
	}
	return v
}
