// Package exporter serializes assembled feature tables for downstream
// consumers. The extraction core is serialization-free; this package
// is the collaborator that renders its in-memory table as CSV (with
// optional UTF-8 BOM for Excel) or as an XLSX workbook.
package exporter
