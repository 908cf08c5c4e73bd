package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// builtinDateFormats are the built-in number format ids that display dates.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 30: true, 36: true, 50: true, 57: true, 58: true,
}

// isDateCell reports whether the cell's number format renders a date.
func isDateCell(f *excelize.File, sheetName, ref string) bool {
	styleID, err := f.GetCellStyle(sheetName, ref)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtinDateFormats[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains day or year tokens
// outside quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			b.WriteByte(c)
		}
	}
	// Only the first section decides; the rest are negative/zero/text variants.
	section, _, _ := strings.Cut(strings.ToLower(b.String()), ";")
	return strings.ContainsAny(section, "dy")
}
