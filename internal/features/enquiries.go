package features

import (
	"time"

	"cbfx/internal/report"
)

// enquiryTimeLayout parses bureau request timestamps such as
// "12/03/2024 14:05:33", with or without zero padding.
const enquiryTimeLayout = "2/1/2006 15:04:05"

// DefaultRecencyWindowDays is the lookback window for counting recent
// credit enquiries.
const DefaultRecencyWindowDays = 90

// enquiryHistory counts enquiries whose request timestamp falls within
// the recency window ending at now. Entries with missing or
// unparseable timestamps are skipped, never counted, and never abort
// the scan. The elapsed duration is truncated to whole days before
// comparison, so an enquiry 90 days and some hours old still counts.
func enquiryHistory(entries []report.Document, now time.Time, windowDays int) Record {
	recent := 0
	for _, enquiry := range entries {
		requested, err := time.Parse(enquiryTimeLayout, enquiry.String("daterequested"))
		if err != nil {
			continue
		}
		if int(now.Sub(requested).Hours()/24) <= windowDays {
			recent++
		}
	}
	return Record{"total_recent_enquiries": recent}
}
