package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cbfx/internal/features"
)

// CSVWriter renders feature tables as CSV.
type CSVWriter struct {
	// BOMPrefix adds a UTF-8 BOM so Excel recognizes the encoding.
	BOMPrefix bool
}

// NewCSVWriter creates a CSV writer with BOM output enabled.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{BOMPrefix: true}
}

// Write renders the table to out, header row first, one row per
// feature record in table order.
func (w *CSVWriter) Write(out io.Writer, table *features.Table) error {
	if w.BOMPrefix {
		if _, err := out.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(table.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range table.Rows() {
		row := make([]string, 0, len(table.Columns()))
		for _, col := range table.Columns() {
			row = append(row, formatValue(rec[col]))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile renders the table to a CSV file, creating parent
// directories as needed.
func (w *CSVWriter) WriteFile(path string, table *features.Table) error {
	slog.Info("Writing feature table CSV",
		slog.String("path", path),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return w.Write(file, table)
}
