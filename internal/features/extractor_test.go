package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// sampleReport mirrors the bureau payload shape as decoded from JSON.
func sampleReport(applicationID string) map[string]any {
	return map[string]any{
		"application_id": applicationID,
		"data": map[string]any{
			"consumerfullcredit": map[string]any{
				"accountrating": map[string]any{
					"noofotheraccountsbad":  "1",
					"noofotheraccountsgood": "4",
				},
				"creditaccountsummary": map[string]any{
					"totaloutstandingdebt":   "250,000",
					"amountarrear":           "5,000",
					"totalmonthlyinstalment": "12,500",
					"totalnumberofjudgement": "0",
				},
				"enquiryhistorytop": []any{
					map[string]any{
						"daterequested": testNow.AddDate(0, 0, -10).Format("02/01/2006 15:04:05"),
					},
					map[string]any{
						"daterequested": testNow.AddDate(0, 0, -200).Format("02/01/2006 15:04:05"),
					},
				},
				"creditagreementsummary": []any{
					map[string]any{
						"indicatordescription": "Personal Loan",
						"amountoverdue":        "1,000",
						"loanduration":         "30",
					},
					map[string]any{
						"indicatordescription": "Overdraft Facility",
						"accountstatus":        "WrittenOff",
						"amountoverdue":        "500",
						"loanduration":         "0",
					},
				},
				"deliquencyinformation": map[string]any{
					"monthsinarrears": "2",
				},
				"personaldetailssummary": map[string]any{
					"birthdate":         "15/06/1990",
					"propertyownedtype": "Owned",
					"employerdetail":    "Acme Ltd",
				},
				"guarantordetails": map[string]any{
					"guarantordateofbirth": "1900-01-01T00:00:00+01:00",
					"guarantorname":        "J. Doe",
				},
				"guarantorcount": map[string]any{
					"accounts": "1",
				},
			},
		},
	}
}

func TestExtractFullReport(t *testing.T) {
	e := NewExtractor(nil, WithClock(fixedClock))

	rec := e.Extract(sampleReport("A1"))

	require.Len(t, rec, len(Columns), "every declared feature key is present")
	for _, col := range Columns {
		_, ok := rec[col]
		assert.True(t, ok, "missing feature key %q", col)
	}

	assert.Equal(t, "A1", rec["application_id"])
	assert.Equal(t, 1.0, rec["no_of_bad_accounts"])
	assert.Equal(t, 4.0, rec["no_of_good_accounts"])
	assert.Equal(t, 250000.0, rec["total_outstanding_debt"])
	assert.Equal(t, 1, rec["total_recent_enquiries"])
	assert.Equal(t, 1, rec["personal_loan_count"])
	assert.Equal(t, 1, rec["overdraft_count"])
	assert.Equal(t, 1, rec["written_off_accounts"])
	assert.Equal(t, 1000.0, rec["max_amount_overdue"])
	assert.Equal(t, 30.0, rec["avg_loan_duration_days"])
	assert.Equal(t, 2.0, rec["max_months_in_arrears"])
	assert.Equal(t, 34, rec["age"], "birthday reached on the snapshot day")
	assert.Equal(t, 1, rec["property_owned"])
	assert.Equal(t, "Employed", rec["employment_status"])
	assert.Equal(t, 1.0, rec["guarantor_count"])
	assert.Equal(t, 1, rec["has_guarantor"])
}

func TestExtractReportWithoutData(t *testing.T) {
	e := NewExtractor(nil, WithClock(fixedClock))

	rec := e.Extract(map[string]any{"application_id": "A1"})

	// Shallow validation by design: only the id survives, nothing is
	// defaulted in.
	assert.Equal(t, Record{"application_id": "A1"}, rec)
}

func TestExtractEmptyAndNonMappingReports(t *testing.T) {
	e := NewExtractor(nil, WithClock(fixedClock))

	assert.Equal(t, Record{"application_id": nil}, e.Extract(nil))
	assert.Equal(t, Record{"application_id": nil}, e.Extract(map[string]any{}))
	assert.Equal(t, Record{"application_id": nil}, e.Extract("not a report"))
}

func TestExtractMalformedSections(t *testing.T) {
	e := NewExtractor(nil, WithClock(fixedClock))

	rec := e.Extract(map[string]any{
		"application_id": "A2",
		"data": map[string]any{
			"consumerfullcredit": map[string]any{
				"accountrating":          "garbage",
				"creditaccountsummary":   42.0,
				"enquiryhistorytop":      "not a list",
				"creditagreementsummary": []any{"not a mapping"},
				"personaldetailssummary": nil,
			},
		},
	})

	require.Len(t, rec, len(Columns), "malformed sections still default-fill")
	assert.Equal(t, 0.0, rec["no_of_bad_accounts"])
	assert.Equal(t, 0.0, rec["total_outstanding_debt"])
	assert.Equal(t, 0, rec["total_recent_enquiries"])
	assert.Equal(t, 0, rec["personal_loan_count"])
	assert.Nil(t, rec["age"])
	assert.Equal(t, "Unknown", rec["employment_status"])
}

func TestExtractMissingConsumerSection(t *testing.T) {
	e := NewExtractor(nil, WithClock(fixedClock))

	rec := e.Extract(map[string]any{
		"application_id": "A3",
		"data":           map[string]any{},
	})

	// A data key with nothing under it still yields the full key set.
	require.Len(t, rec, len(Columns))
	assert.Equal(t, "A3", rec["application_id"])
}

func TestWithRecencyWindow(t *testing.T) {
	e := NewExtractor(nil, WithClock(fixedClock), WithRecencyWindow(365))

	rec := e.Extract(sampleReport("A1"))
	assert.Equal(t, 2, rec["total_recent_enquiries"], "wider window counts both enquiries")
}
