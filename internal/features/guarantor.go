package features

import "cbfx/internal/report"

// guarantorEpochSentinel is the source system's placeholder timestamp
// meaning "no data", distinct from a genuinely absent field.
const guarantorEpochSentinel = "1900-01-01T00:00:00+01:00"

// guarantorInfo reads the guarantor account count and flags whether
// the details section holds any real guarantor data. The date-of-birth
// field is excluded from the scan because the source system populates
// it even for empty guarantor records.
func guarantorInfo(details, counts report.Document) Record {
	rec := Record{
		"guarantor_count": CleanNumeric(counts.Value("accounts")),
		"has_guarantor":   0,
	}
	for field, value := range details {
		if field == "guarantordateofbirth" {
			continue
		}
		if isNoDataSentinel(value) {
			continue
		}
		rec["has_guarantor"] = 1
		break
	}
	return rec
}

func isNoDataSentinel(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return s == "" || s == "null" || s == guarantorEpochSentinel
}
