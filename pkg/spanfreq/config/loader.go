package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cognicore/spanfreq/pkg/spanfreq"
	"github.com/cognicore/spanfreq/pkg/spanfreq/ingest"
)

// Loader loads the options file and segmenter dictionary
type Loader struct {
	OptionsPath string
	DictPath    string // overrides segmenter_dict from the options file
}

// Components holds everything needed to run and present an analysis
type Components struct {
	Analysis spanfreq.Options
	Classes  []ingest.Class // empty means all classes
	Limit    int
}

// Load reads the configured files and returns initialized components.
// Empty paths fall back to defaults.
func (l *Loader) Load() (*Components, error) {
	opts := DefaultOptions()
	if l.OptionsPath != "" {
		loaded, err := LoadOptions(l.OptionsPath)
		if err != nil {
			return nil, fmt.Errorf("load options: %w", err)
		}
		opts = *loaded
	}
	if l.DictPath != "" {
		opts.SegmenterDict = l.DictPath
	}
	return Build(opts, nil)
}

// Build turns validated file options into components.
func Build(opts Options, logger *slog.Logger) (*Components, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	comp := &Components{
		Analysis: spanfreq.Options{
			MinChineseLength:    opts.MinChineseLength,
			MinEnglishWordCount: opts.MinEnglishWordCount,
			UseSegmenter:        opts.UseSegmenter,
			Workers:             opts.Workers,
			Normalize:           opts.Normalize,
			Logger:              logger,
		},
		Limit: opts.Limit,
	}

	if class, ok := ingest.ParseClass(strings.ToLower(opts.Classes)); ok {
		comp.Classes = []ingest.Class{class}
	}

	if opts.UseSegmenter {
		var words []string
		if opts.SegmenterDict != "" {
			var err error
			words, err = LoadDictionary(opts.SegmenterDict)
			if err != nil {
				return nil, fmt.Errorf("load dictionary: %w", err)
			}
		}
		dict := ingest.NewDictionary(words)
		if logger != nil {
			logger.Debug("segmenter dictionary loaded", "path", opts.SegmenterDict, "words", dict.Len())
		}
		comp.Analysis.Segmenter = ingest.NewDictSegmenter(dict)
	}

	return comp, nil
}
