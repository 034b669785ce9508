package features

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cbfx/internal/report"
)

// Table is the assembled feature table: one row per application,
// uniquely keyed by application_id, with the fixed Columns set.
type Table struct {
	columns []string
	rows    []Record
	index   map[string]int
}

func newTable(columns []string) *Table {
	return &Table{
		columns: columns,
		index:   make(map[string]int),
	}
}

// Columns returns the column names in output order.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns the records in row order.
func (t *Table) Rows() []Record {
	return t.rows
}

// RowCount returns the number of rows. Callers detect dropped
// malformed reports by comparing this against their input size.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the number of columns including application_id.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// Row returns the record for an application id.
func (t *Table) Row(applicationID string) (Record, bool) {
	pos, ok := t.index[applicationID]
	if !ok {
		return nil, false
	}
	return t.rows[pos], true
}

// upsert inserts a record keyed by its application id. A duplicate id
// replaces the earlier row's content in place: last occurrence wins,
// original row position is kept.
func (t *Table) upsert(rec Record) {
	key := fmt.Sprint(rec["application_id"])
	if pos, ok := t.index[key]; ok {
		t.rows[pos] = rec
		return
	}
	t.index[key] = len(t.rows)
	t.rows = append(t.rows, rec)
}

// Builder turns batches of raw report documents into feature tables.
type Builder struct {
	extractor      *Extractor
	logger         *slog.Logger
	maxConcurrency int
}

// NewBuilder creates a batch builder around an extractor. A nil
// logger falls back to slog.Default().
func NewBuilder(extractor *Extractor, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		extractor:      extractor,
		logger:         logger,
		maxConcurrency: 1,
	}
}

// SetMaxConcurrency bounds the number of reports extracted in
// parallel. Extraction is pure per report, so concurrency never
// changes the output; values below 2 keep the build sequential.
func (b *Builder) SetMaxConcurrency(n int) {
	b.maxConcurrency = n
}

// Build filters the batch to mapping-shaped entries carrying an
// application_id key, extracts one record per survivor, and assembles
// the table. Malformed entries are dropped silently, never an error.
// The clock is read once so age and recency features are consistent
// across the whole run.
func (b *Builder) Build(ctx context.Context, reports []any) *Table {
	start := time.Now()
	now := b.extractor.clock()
	runID := uuid.NewString()

	b.logger.InfoContext(ctx, "building feature table",
		slog.String("run_id", runID),
		slog.Int("report_count", len(reports)),
		slog.Time("snapshot", now),
	)

	valid := make([]any, 0, len(reports))
	dropped := 0
	for _, rep := range reports {
		doc, ok := report.FromAny(rep)
		if !ok || !doc.Has("application_id") {
			dropped++
			continue
		}
		valid = append(valid, rep)
	}
	if dropped > 0 {
		b.logger.WarnContext(ctx, "dropped malformed reports",
			slog.String("run_id", runID),
			slog.Int("dropped", dropped),
		)
	}

	records := make([]Record, len(valid))
	if b.maxConcurrency > 1 {
		var g errgroup.Group
		g.SetLimit(b.maxConcurrency)
		for i, rep := range valid {
			g.Go(func() error {
				records[i] = b.extractor.extractAt(rep, now)
				return nil
			})
		}
		// Extraction is infallible, Wait only joins the workers.
		_ = g.Wait()
	} else {
		for i, rep := range valid {
			records[i] = b.extractor.extractAt(rep, now)
		}
	}

	table := newTable(Columns)
	for _, rec := range records {
		table.upsert(rec)
	}

	b.logger.InfoContext(ctx, "feature table built",
		slog.String("run_id", runID),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()),
		slog.Int("dropped", dropped),
		slog.Duration("duration", time.Since(start)),
	)
	return table
}
