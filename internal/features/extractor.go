package features

import (
	"log/slog"
	"time"

	"cbfx/internal/report"
)

// Clock supplies the current time. The extractor takes one so that
// age and enquiry-recency features are reproducible under test and
// consistent within a batch run.
type Clock func() time.Time

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(e *Extractor) {
		e.clock = clock
	}
}

// WithRecencyWindow sets the enquiry lookback window in days.
func WithRecencyWindow(days int) Option {
	return func(e *Extractor) {
		e.recencyWindowDays = days
	}
}

// Extractor assembles one feature Record per credit report.
type Extractor struct {
	logger            *slog.Logger
	clock             Clock
	recencyWindowDays int
}

// NewExtractor creates an extractor. A nil logger falls back to
// slog.Default().
func NewExtractor(logger *slog.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{
		logger:            logger,
		clock:             time.Now,
		recencyWindowDays: DefaultRecencyWindowDays,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract produces exactly one Record for a report, reading the clock
// once. Reports that are empty, non-mapping, or lack a top-level
// "data" field yield a reduced record holding only application_id —
// shallow validation is deliberate here, callers tolerate partial
// rows at this edge.
func (e *Extractor) Extract(rep any) Record {
	return e.extractAt(rep, e.clock())
}

// extractAt runs the seven section extractors against
// data.consumerfullcredit and merges their outputs. Each sub-section
// defaults to an empty mapping or sequence when absent, so every
// extractor always emits its full key set. Key sets are disjoint by
// construction; no merge policy is needed.
func (e *Extractor) extractAt(rep any, now time.Time) Record {
	doc, _ := report.FromAny(rep)
	rec := Record{"application_id": doc.Value("application_id")}
	if len(doc) == 0 || !doc.Has("data") {
		e.logger.Debug("report has no data section, emitting reduced record",
			slog.Any("application_id", rec["application_id"]))
		return rec
	}

	consumer := doc.Map("data").Map("consumerfullcredit")

	rec.merge(accountRatings(consumer.Map("accountrating")))
	rec.merge(creditSummary(consumer.Map("creditaccountsummary")))
	rec.merge(enquiryHistory(consumer.List("enquiryhistorytop"), now, e.recencyWindowDays))
	rec.merge(creditAgreements(consumer.List("creditagreementsummary")))
	rec.merge(delinquency(consumer.Map("deliquencyinformation")))
	rec.merge(personalDetails(consumer.Map("personaldetailssummary"), now))
	rec.merge(guarantorInfo(consumer.Map("guarantordetails"), consumer.Map("guarantorcount")))

	return rec
}
