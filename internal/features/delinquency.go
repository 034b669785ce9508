package features

import "cbfx/internal/report"

// delinquency reads the months-in-arrears figure. Despite the output
// name this is a single scalar from the payload, not a maximum over
// delinquency entries; the source system only ever supplies one.
func delinquency(section report.Document) Record {
	return Record{
		"max_months_in_arrears": CleanNumeric(section.Value("monthsinarrears")),
	}
}
