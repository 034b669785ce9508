package features

import "cbfx/internal/report"

// creditSummary extracts the aggregate debt position. The source
// field "totalnumberofjudgement" is singular in the payload.
func creditSummary(section report.Document) Record {
	return Record{
		"total_outstanding_debt":     CleanNumeric(section.Value("totaloutstandingdebt")),
		"total_arrears":              CleanNumeric(section.Value("amountarrear")),
		"total_monthly_instalment":   CleanNumeric(section.Value("totalmonthlyinstalment")),
		"total_number_of_judgements": CleanNumeric(section.Value("totalnumberofjudgement")),
	}
}
