package features

import (
	"strings"

	"cbfx/internal/report"
)

// creditAgreements aggregates the per-account agreement summaries:
// loan-type counts from the indicator description, written-off status
// counts, the worst overdue amount, and the mean duration across
// accounts with a strictly positive duration.
func creditAgreements(entries []report.Document) Record {
	rec := Record{
		"personal_loan_count":    0,
		"overdraft_count":        0,
		"max_amount_overdue":     float64(0),
		"avg_loan_duration_days": float64(0),
		"written_off_accounts":   0,
	}

	var (
		personalLoans  int
		overdrafts     int
		writtenOff     int
		maxOverdue     float64
		totalDuration  float64
		validDurations int
	)

	for _, account := range entries {
		desc := strings.ToLower(account.String("indicatordescription"))
		if strings.Contains(desc, "personal") {
			personalLoans++
		}
		if strings.Contains(desc, "overdraft") {
			overdrafts++
		}

		if account.Value("accountstatus") == "WrittenOff" {
			writtenOff++
		}

		if overdue := CleanNumeric(account.Value("amountoverdue")); overdue > maxOverdue {
			maxOverdue = overdue
		}

		if duration := CleanNumeric(account.Value("loanduration")); duration > 0 {
			totalDuration += duration
			validDurations++
		}
	}

	rec["personal_loan_count"] = personalLoans
	rec["overdraft_count"] = overdrafts
	rec["max_amount_overdue"] = maxOverdue
	rec["written_off_accounts"] = writtenOff
	if validDurations > 0 {
		rec["avg_loan_duration_days"] = totalDuration / float64(validDurations)
	}
	return rec
}
