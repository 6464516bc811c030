package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LoadJSONL reads one JSON object per line and picks col.Text (and
// col.Weight) from each. Malformed lines are skipped with a warning.
func LoadJSONL(path string, col Column, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	ds := &Dataset{}
	if col.Weight != "" {
		ds.Weights = []any{}
	}
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var obj map[string]any
		dec := json.NewDecoder(bytes.NewReader([]byte(line)))
		dec.UseNumber()
		if err := dec.Decode(&obj); err != nil {
			logger.Warn("skipping malformed JSON line", "path", path, "line", i+1, "error", err)
			continue
		}
		var weight any
		if col.Weight != "" {
			weight = obj[col.Weight]
		}
		ds.add(obj[col.Text], weight, col.Weight != "")
	}
	return ds, nil
}
