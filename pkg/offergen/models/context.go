package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Context is the flat field-name to scalar mapping used to render one document.
type Context map[string]any

// String returns the display form of a context value, or "" when absent.
func (c Context) String(key string) string {
	v, ok := c[key]
	if !ok {
		return ""
	}
	return Display(v)
}

// Strings returns the whole context in display form.
func (c Context) Strings() map[string]string {
	out := make(map[string]string, len(c))
	for k, v := range c {
		out[k] = Display(v)
	}
	return out
}

// Display stringifies a scalar the way it is written into a document.
func Display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case time.Time:
		return x.Format("02/01/2006")
	default:
		return fmt.Sprint(x)
	}
}

// Blank reports whether a scalar is nil or whitespace once stringified.
func Blank(v any) bool {
	return strings.TrimSpace(Display(v)) == ""
}
