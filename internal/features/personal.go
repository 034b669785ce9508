package features

import (
	"time"

	"cbfx/internal/report"
)

// personalDetails derives the demographic features: age from the
// birthdate, a property-ownership flag, and an employment category
// based on whether any employer detail is on file.
func personalDetails(section report.Document, now time.Time) Record {
	rec := Record{
		"age":               nil,
		"property_owned":    0,
		"employment_status": "Unknown",
	}
	if age := AgeAt(section.String("birthdate"), now); age != nil {
		rec["age"] = *age
	}
	if truthy(section.Value("propertyownedtype")) {
		rec["property_owned"] = 1
	}
	if truthy(section.Value("employerdetail")) {
		rec["employment_status"] = "Employed"
	}
	return rec
}

// truthy reports whether a decoded JSON value carries data: empty
// strings, zero numbers, empty containers, false, and null do not.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case report.Document:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
