package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/spanfreq/pkg/spanfreq/internalerr"
)

// Options represents the analysis options file
type Options struct {
	MinChineseLength    int    `yaml:"min_chinese_length"`
	MinEnglishWordCount int    `yaml:"min_english_word_count"`
	UseSegmenter        bool   `yaml:"use_segmenter"`
	SegmenterDict       string `yaml:"segmenter_dict"`
	Workers             int    `yaml:"workers"`
	Normalize           bool   `yaml:"normalize"`
	Classes             string `yaml:"classes"` // all, cjk or latin
	Limit               int    `yaml:"limit"`
}

// DefaultOptions returns the values used for keys missing from a file.
func DefaultOptions() Options {
	return Options{
		MinChineseLength:    3,
		MinEnglishWordCount: 1,
		Workers:             1,
		Classes:             "all",
	}
}

// LoadOptions loads options from a YAML file on top of DefaultOptions
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Validate checks value ranges
func (o Options) Validate() error {
	switch {
	case o.MinChineseLength < 1:
		return fmt.Errorf("min_chinese_length must be >= 1, got %d: %w", o.MinChineseLength, internalerr.ErrInvalidConfig)
	case o.MinEnglishWordCount < 1:
		return fmt.Errorf("min_english_word_count must be >= 1, got %d: %w", o.MinEnglishWordCount, internalerr.ErrInvalidConfig)
	case o.Workers < 0:
		return fmt.Errorf("workers must be >= 0, got %d: %w", o.Workers, internalerr.ErrInvalidConfig)
	case o.Limit < 0:
		return fmt.Errorf("limit must be >= 0, got %d: %w", o.Limit, internalerr.ErrInvalidConfig)
	}
	switch strings.ToLower(o.Classes) {
	case "", "all", "cjk", "latin":
	default:
		return fmt.Errorf("classes must be all, cjk or latin, got %q: %w", o.Classes, internalerr.ErrInvalidConfig)
	}
	return nil
}

// LoadDictionary loads segmenter words from a file.
// Format: one entry per line, "word [freq] [tag]"; only the word is used.
// Blank lines and lines starting with # are skipped.
func LoadDictionary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		words = append(words, fields[0])
	}
	return words, nil
}
