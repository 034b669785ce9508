package features

// Record is one flat row of derived features for a single application.
// Values are float64, int, string, or nil (age only).
type Record map[string]any

func (r Record) merge(other Record) {
	for k, v := range other {
		r[k] = v
	}
}

// Columns is the full column set of a feature table in emission order,
// with the application_id row key first. Every fully assembled Record
// carries all of these keys; reports without a data section carry only
// the first.
var Columns = []string{
	"application_id",
	"no_of_bad_accounts",
	"no_of_good_accounts",
	"total_outstanding_debt",
	"total_arrears",
	"total_monthly_instalment",
	"total_number_of_judgements",
	"total_recent_enquiries",
	"personal_loan_count",
	"overdraft_count",
	"max_amount_overdue",
	"avg_loan_duration_days",
	"written_off_accounts",
	"max_months_in_arrears",
	"age",
	"property_owned",
	"employment_status",
	"guarantor_count",
	"has_guarantor",
}
