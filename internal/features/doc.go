// Package features derives a fixed set of model-ready features from
// credit-bureau reports and assembles them into a table keyed by
// application id.
//
// # Architecture
//
// The package is organized leaf to root:
//
// 1. CleanNumeric / AgeAt: coerce heterogeneous bureau values
// 2. Section extractors: one per report sub-section, fixed output keys
// 3. Extractor: merges section outputs into one Record per report
// 4. Builder: batches reports into a Table, one row per application
//
// # Error Handling
//
// Extraction never fails. Malformed numerics normalize to 0, malformed
// dates leave the age feature absent, malformed enquiry entries are
// skipped, and wrong-shaped sub-sections produce default-filled
// records. The only batch-level failure mode is a dropped row, which
// callers detect by comparing row counts, not by catching errors.
package features
