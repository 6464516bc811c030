// Package spanfreq computes weighted substring and word-span frequency
// tables over a collection of text records.
//
// Each record is scanned for CJK ideograph runs and ASCII word runs.
// Every candidate token is credited with its record's weight, and the
// result rows report each token's share of the total weight.
package spanfreq

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/spanfreq/pkg/spanfreq/analytics"
	"github.com/cognicore/spanfreq/pkg/spanfreq/ingest"
	"github.com/cognicore/spanfreq/pkg/spanfreq/internalerr"
	"github.com/cognicore/spanfreq/pkg/spanfreq/rank"
	"github.com/cognicore/spanfreq/pkg/spanfreq/weights"
)

// Defaults for Options fields left at zero.
const (
	DefaultMinChineseLength    = 3
	DefaultMinEnglishWordCount = 1
)

// Options configures an analysis run. A Segmenter is shared by all
// workers, so it must be safe for concurrent use when Workers > 1.
type Options struct {
	MinChineseLength    int  // minimum CJK token length in characters
	MinEnglishWordCount int  // minimum Latin span length in words
	UseSegmenter        bool // cut CJK text with Segmenter instead of brute force
	Segmenter           ingest.Segmenter
	Workers             int  // records are sharded across this many goroutines when > 1
	Normalize           bool // NFKC-fold records before enumeration
	Logger              *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MinChineseLength:    DefaultMinChineseLength,
		MinEnglishWordCount: DefaultMinEnglishWordCount,
		Workers:             1,
	}
}

func (o Options) normalized() (Options, error) {
	if o.MinChineseLength < 0 || o.MinEnglishWordCount < 0 || o.Workers < 0 {
		return o, fmt.Errorf("min_chinese_length=%d min_english_word_count=%d workers=%d: %w",
			o.MinChineseLength, o.MinEnglishWordCount, o.Workers, internalerr.ErrInvalidConfig)
	}
	if o.MinChineseLength == 0 {
		o.MinChineseLength = DefaultMinChineseLength
	}
	if o.MinEnglishWordCount == 0 {
		o.MinEnglishWordCount = DefaultMinEnglishWordCount
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o, nil
}

// Report is the outcome of one analysis run.
type Report struct {
	ID          string     `json:"id"`
	Records     int        `json:"records"`
	TotalWeight float64    `json:"total_weight"`
	Rows        []rank.Row `json:"rows"`
}

// Analyze returns the ranked result rows for records. weightColumn is
// optional; when present it must have one raw value per record.
func Analyze(records []string, weightColumn []any, opts Options) ([]rank.Row, error) {
	rep, err := AnalyzeReport(context.Background(), records, weightColumn, opts)
	if err != nil {
		return nil, err
	}
	return rep.Rows, nil
}

// AnalyzeContext is Analyze with cancellation checked between records.
func AnalyzeContext(ctx context.Context, records []string, weightColumn []any, opts Options) ([]rank.Row, error) {
	rep, err := AnalyzeReport(ctx, records, weightColumn, opts)
	if err != nil {
		return nil, err
	}
	return rep.Rows, nil
}

// AnalyzeReport runs the analysis and wraps the rows in a Report.
func AnalyzeReport(ctx context.Context, records []string, weightColumn []any, opts Options) (*Report, error) {
	opts, err := opts.normalized()
	if err != nil {
		return nil, err
	}

	ws, err := weights.Resolve(weightColumn, len(records))
	if err != nil {
		return nil, err
	}
	total := weights.Total(ws)
	if len(records) > 0 && total <= 0 {
		return nil, fmt.Errorf("%d records: %w", len(records), internalerr.ErrDegenerateWeights)
	}

	if opts.UseSegmenter && opts.Segmenter == nil {
		opts.Logger.Warn("segmenter requested but not supplied, using brute-force CJK enumeration")
	}

	var tally *analytics.Tally
	if opts.Workers > 1 && len(records) > 1 {
		tally, err = tallyParallel(ctx, records, ws, opts)
	} else {
		tally, err = tallyRange(ctx, records, ws, opts)
	}
	if err != nil {
		return nil, err
	}

	rows, err := rank.Project(tally.Snapshot(), total)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("analysis complete",
		"records", tally.Records(),
		"workers", opts.Workers,
		"cjk_tokens", tally.Len(ingest.CJK),
		"latin_tokens", tally.Len(ingest.Latin),
		"total_weight", total,
	)

	return &Report{
		ID:          ulid.Make().String(),
		Records:     int(tally.Records()),
		TotalWeight: total,
		Rows:        rows,
	}, nil
}

// enumerators builds the per-run enumerators for opts.
func enumerators(opts Options) (*ingest.CJKEnumerator, *ingest.LatinEnumerator) {
	cjk := ingest.NewCJKEnumerator(opts.MinChineseLength)
	if opts.UseSegmenter {
		cjk.Segmenter = opts.Segmenter
	}
	return cjk, ingest.NewLatinEnumerator(opts.MinEnglishWordCount)
}

// tallyRange aggregates records into a fresh tally.
func tallyRange(ctx context.Context, records []string, ws []float64, opts Options) (*analytics.Tally, error) {
	cjk, latin := enumerators(opts)
	tally := analytics.NewTally()
	for i, text := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tally.MarkRecord()
		w := ws[i]
		if w == 0 {
			continue
		}
		if opts.Normalize {
			text = ingest.Normalize(text)
		}
		cjk.Enumerate(text, func(c ingest.Candidate) {
			tally.Add(ingest.CJK, c, w)
		})
		latin.Enumerate(text, func(c ingest.Candidate) {
			tally.Add(ingest.Latin, c, w)
		})
	}
	return tally, nil
}

// tallyParallel splits records into contiguous shards, tallies each shard
// on its own goroutine and merges the partial tallies under a lock.
func tallyParallel(ctx context.Context, records []string, ws []float64, opts Options) (*analytics.Tally, error) {
	shards := opts.Workers
	if shards > len(records) {
		shards = len(records)
	}
	size := (len(records) + shards - 1) / shards

	var (
		mu     sync.Mutex
		merged = analytics.NewTally()
	)
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		g.Go(func() error {
			part, err := tallyRange(gctx, records[start:end], ws[start:end], opts)
			if err != nil {
				return err
			}
			mu.Lock()
			merged.Merge(part)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merged, nil
}
