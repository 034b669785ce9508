package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cbfx/internal/config"
	"cbfx/internal/exporter"
	"cbfx/internal/features"
	"cbfx/internal/infrastructure"
	"cbfx/internal/report"
)

func main() {
	configFile := flag.String("config", "", "path to config.yaml (defaults to ./config.yaml)")
	inputFile := flag.String("in", "", "JSON file holding an array of credit reports")
	outputDir := flag.String("out", "", "output directory for the feature table (defaults to data/features)")
	format := flag.String("format", "csv", "output format: csv or xlsx")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if *inputFile == "" {
		*inputFile = cfg.Paths.InputFile
	}
	if *inputFile == "" {
		logger.Error("No input file specified, use -in or paths.input_file")
		os.Exit(1)
	}
	if *outputDir == "" {
		*outputDir = cfg.Paths.OutputDir
	}

	if err := run(cfg, logger, *inputFile, *outputDir, *format); err != nil {
		logger.Error("Extraction failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, inputFile, outputDir, format string) error {
	file, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	reports, err := report.ParseBatch(file)
	if err != nil {
		return fmt.Errorf("failed to parse reports: %w", err)
	}
	logger.Info("Loaded report batch",
		slog.String("input_file", inputFile),
		slog.Int("report_count", len(reports)))

	extractor := features.NewExtractor(logger,
		features.WithRecencyWindow(cfg.Extraction.RecencyWindowDays))
	builder := features.NewBuilder(extractor, logger)
	builder.SetMaxConcurrency(cfg.Extraction.MaxConcurrency)

	table := builder.Build(context.Background(), reports)

	switch format {
	case "csv":
		path := filepath.Join(outputDir, "features.csv")
		if err := exporter.NewCSVWriter().WriteFile(path, table); err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
	case "xlsx":
		path := filepath.Join(outputDir, "features.xlsx")
		if err := exporter.NewXLSXWriter().WriteFile(path, table); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	logger.Info("Feature extraction complete",
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()),
		slog.String("output_dir", outputDir))
	return nil
}
