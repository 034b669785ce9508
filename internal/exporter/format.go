package exporter

import (
	"fmt"
	"strconv"
)

// formatValue renders a single feature value for CSV output. Absent
// values (a missing age) render as an empty cell; floats keep their
// shortest exact representation so counts like 1000 do not grow a
// trailing ".00".
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
