package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"cbfx/internal/features"
)

// XLSXWriter renders feature tables as a single-sheet Excel workbook.
type XLSXWriter struct {
	SheetName string
}

// NewXLSXWriter creates an XLSX writer with the default sheet name.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{SheetName: "Features"}
}

// WriteFile renders the table to an XLSX file, creating parent
// directories as needed.
func (w *XLSXWriter) WriteFile(path string, table *features.Table) error {
	slog.Info("Writing feature table workbook",
		slog.String("path", path),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := w.SheetName
	if sheet == "" {
		sheet = "Features"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, 0, table.ColumnCount())
	for _, col := range table.Columns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range table.Rows() {
		row := make([]any, 0, table.ColumnCount())
		for _, col := range table.Columns() {
			row = append(row, rec[col])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
