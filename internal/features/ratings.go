package features

import "cbfx/internal/report"

// Field names follow the bureau payload verbatim, including its
// misspelling of "noofautoloanccountsgood".
var (
	badAccountFields = []string{
		"noofotheraccountsbad", "noofretailaccountsbad", "nooftelecomaccountsbad",
		"noofautoloanaccountsbad", "noofhomeloanaccountsbad", "noofjointloanaccountsbad",
		"noofstudyloanaccountsbad", "noofcreditcardaccountsbad", "noofpersonalloanaccountsbad",
	}
	goodAccountFields = []string{
		"noofotheraccountsgood", "noofretailaccountsgood", "nooftelecomaccountsgood",
		"noofautoloanccountsgood", "noofhomeloanaccountsgood", "noofjointloanaccountsgood",
		"noofstudyloanaccountsgood", "noofcreditcardaccountsgood", "noofpersonalloanaccountsgood",
	}
)

// accountRatings sums the per-product bad and good account counters.
func accountRatings(section report.Document) Record {
	return Record{
		"no_of_bad_accounts":  sumFields(section, badAccountFields),
		"no_of_good_accounts": sumFields(section, goodAccountFields),
	}
}

func sumFields(section report.Document, fields []string) float64 {
	var total float64
	for _, field := range fields {
		total += CleanNumeric(section.Value(field))
	}
	return total
}
