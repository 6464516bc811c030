// Package source reads text records, and optionally a parallel weight
// column, out of tabular files.
package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cognicore/spanfreq/pkg/spanfreq/internalerr"
)

// Dataset is a record column plus an optional raw weight column of the
// same length. Weights is nil when no weight column was requested.
type Dataset struct {
	Records []string
	Weights []any
}

// Column selects the fields to read. Weight may be empty.
type Column struct {
	Text   string
	Weight string
}

func (d *Dataset) add(text any, weight any, withWeight bool) {
	d.Records = append(d.Records, Stringify(text))
	if withWeight {
		d.Weights = append(d.Weights, weight)
	}
}

// Stringify coerces a cell value to its textual form. Missing values become
// the empty string.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// columnIndex finds name in a header row, ignoring surrounding space.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q: %w", name, internalerr.ErrNotFound)
}

// fromRows builds a dataset from a header row and data rows. Short rows are
// padded with missing values.
func fromRows(header []string, rows [][]string, col Column) (*Dataset, error) {
	textIdx, err := columnIndex(header, col.Text)
	if err != nil {
		return nil, err
	}
	weightIdx := -1
	if col.Weight != "" {
		if weightIdx, err = columnIndex(header, col.Weight); err != nil {
			return nil, err
		}
	}

	ds := &Dataset{}
	if weightIdx >= 0 {
		ds.Weights = []any{}
	}
	for _, row := range rows {
		var text, weight any
		if textIdx < len(row) {
			text = row[textIdx]
		}
		if weightIdx >= 0 && weightIdx < len(row) {
			weight = row[weightIdx]
		}
		ds.add(text, weight, weightIdx >= 0)
	}
	return ds, nil
}
