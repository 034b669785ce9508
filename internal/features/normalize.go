package features

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// nonNumeric matches everything that is not a digit or decimal point.
var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// CleanNumeric coerces a value of unknown shape to a float64. Numbers
// pass through unchanged; the bureau's no-data sentinels ("", "-",
// "null", "None") and genuine nulls become 0; anything else is parsed
// after stripping separators and currency symbols, so "1,234.56"
// yields 1234.56. Values that still fail to parse degrade to 0 —
// nothing escapes this function.
func CleanNumeric(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		switch strings.TrimSpace(n) {
		case "", "-", "null", "None":
			return 0
		}
		f, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(n, ""), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
