package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/cognicore/spanfreq/internal/export"
	"github.com/cognicore/spanfreq/internal/source"
	"github.com/cognicore/spanfreq/pkg/spanfreq"
	"github.com/cognicore/spanfreq/pkg/spanfreq/config"
	"github.com/cognicore/spanfreq/pkg/spanfreq/rank"
)

type cliFlags struct {
	input        string
	format       string
	column       string
	weightColumn string
	sheet        string
	table        string
	configPath   string
	dictPath     string
	out          string
	html         bool
	logLevel     string
	logFormat    string

	// analysis overrides, applied only when set on the command line
	minCJK    int
	minWords  int
	segment   bool
	workers   int
	normalize bool
	class     string
	limit     int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "spanfreq:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("spanfreq", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var f cliFlags
	fs.StringVarP(&f.input, "input", "i", "", "Input file: .xlsx, .csv, .jsonl or SQLite database (required)")
	fs.StringVar(&f.format, "format", "", "Input format: xlsx, csv, jsonl, sqlite (default: from extension)")
	fs.StringVarP(&f.column, "column", "c", "text", "Column or field holding the text records")
	fs.StringVarP(&f.weightColumn, "weight-column", "w", "", "Optional column holding per-record weights")
	fs.StringVar(&f.sheet, "sheet", "", "Worksheet to read from an .xlsx input (default: first sheet)")
	fs.StringVar(&f.table, "table", "", "Table to read from a SQLite input")
	fs.StringVar(&f.configPath, "config", "", "YAML options file")
	fs.StringVar(&f.dictPath, "dict", "", "Segmenter dictionary, one word per line")
	fs.StringVarP(&f.out, "out", "o", "", "Output file: .xlsx, .csv or .json (default: JSON report on stdout)")
	fs.BoolVar(&f.html, "html", false, "Strip HTML markup from records before analysis")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "text", "Log format: text or json")

	fs.IntVar(&f.minCJK, "min-cjk", 3, "Minimum CJK token length in characters")
	fs.IntVar(&f.minWords, "min-words", 1, "Minimum Latin span length in words")
	fs.BoolVar(&f.segment, "segment", false, "Segment CJK text with the dictionary segmenter")
	fs.IntVar(&f.workers, "workers", 1, "Number of goroutines used for enumeration")
	fs.BoolVar(&f.normalize, "normalize", false, "NFKC-normalize records before analysis")
	fs.StringVar(&f.class, "class", "all", "Rows to keep: all, cjk or latin")
	fs.IntVar(&f.limit, "limit", 0, "Keep only the top N rows (0 = all)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if f.input == "" {
		return fmt.Errorf("--input required")
	}

	logger := newLogger(f.logLevel, f.logFormat, stderr)

	opts := config.DefaultOptions()
	if f.configPath != "" {
		loaded, err := config.LoadOptions(f.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		opts = *loaded
	}
	applyOverrides(fs, f, &opts)

	comp, err := config.Build(opts, logger)
	if err != nil {
		return err
	}

	ds, err := loadDataset(ctx, f, logger)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	if f.html {
		ds.StripHTMLAll()
	}
	logger.Info("records loaded", "input", f.input, "records", len(ds.Records), "weighted", ds.Weights != nil)

	report, err := spanfreq.AnalyzeReport(ctx, ds.Records, ds.Weights, comp.Analysis)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	report.Rows = rank.Limit(rank.Filter(report.Rows, comp.Classes...), comp.Limit)
	logger.Info("analysis done", "id", report.ID, "rows", len(report.Rows), "total_weight", report.TotalWeight)

	return writeReport(f.out, report, stdout)
}

func applyOverrides(fs *pflag.FlagSet, f cliFlags, opts *config.Options) {
	if fs.Changed("min-cjk") {
		opts.MinChineseLength = f.minCJK
	}
	if fs.Changed("min-words") {
		opts.MinEnglishWordCount = f.minWords
	}
	if fs.Changed("segment") {
		opts.UseSegmenter = f.segment
	}
	if fs.Changed("dict") {
		opts.SegmenterDict = f.dictPath
		if !fs.Changed("segment") {
			opts.UseSegmenter = true
		}
	}
	if fs.Changed("workers") {
		opts.Workers = f.workers
	}
	if fs.Changed("normalize") {
		opts.Normalize = f.normalize
	}
	if fs.Changed("class") {
		opts.Classes = f.class
	}
	if fs.Changed("limit") {
		opts.Limit = f.limit
	}
}

func inputFormat(f cliFlags) string {
	if f.format != "" {
		return strings.ToLower(f.format)
	}
	switch strings.ToLower(filepath.Ext(f.input)) {
	case ".xlsx":
		return "xlsx"
	case ".csv":
		return "csv"
	case ".jsonl", ".json", ".ndjson":
		return "jsonl"
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	default:
		return ""
	}
}

func loadDataset(ctx context.Context, f cliFlags, logger *slog.Logger) (*source.Dataset, error) {
	col := source.Column{Text: f.column, Weight: f.weightColumn}
	switch format := inputFormat(f); format {
	case "xlsx":
		return source.LoadXLSX(f.input, f.sheet, col)
	case "csv":
		return source.LoadCSV(f.input, col)
	case "jsonl":
		return source.LoadJSONL(f.input, col, logger)
	case "sqlite":
		if f.table == "" {
			return nil, fmt.Errorf("--table required for SQLite input")
		}
		return source.LoadSQLite(ctx, f.input, f.table, col)
	default:
		return nil, fmt.Errorf("unknown input format %q for %s", format, f.input)
	}
}

func writeReport(out string, report *spanfreq.Report, stdout io.Writer) error {
	if out == "" {
		return export.WriteJSON(stdout, report)
	}

	switch export.Format(out) {
	case "xlsx":
		return export.WriteXLSX(out, report.Rows)
	case "csv":
		file, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := export.WriteCSV(file, report.Rows); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	default:
		file, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := export.WriteJSON(file, report); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}
}

func newLogger(level, format string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
