// Package weights turns an optional raw weight column into a dense weight
// vector aligned with the record sequence.
package weights

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cognicore/spanfreq/pkg/spanfreq/internalerr"
)

// Default is the weight used for missing or unusable values.
const Default = 1.0

// Resolve returns one weight per record. A nil raw slice means every record
// weighs Default. A non-nil raw slice must have exactly n entries.
func Resolve(raw []any, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("record count %d: %w", n, internalerr.ErrInvalidInput)
	}
	out := make([]float64, n)
	if raw == nil {
		for i := range out {
			out[i] = Default
		}
		return out, nil
	}
	if len(raw) != n {
		return nil, fmt.Errorf("weights has %d entries, records has %d: %w", len(raw), n, internalerr.ErrInputShape)
	}
	for i, v := range raw {
		out[i] = Value(v)
	}
	return out, nil
}

// Value coerces a single raw weight. Anything that is not a finite,
// non-negative number resolves to Default.
func Value(v any) float64 {
	f, ok := parse(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return Default
	}
	return f
}

func parse(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		return parseString(x)
	case []byte:
		return parseString(string(x))
	case fmt.Stringer:
		return parseString(x.String())
	default:
		return 0, false
	}
}

func parseString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Total sums a weight vector.
func Total(ws []float64) float64 {
	var t float64
	for _, w := range ws {
		t += w
	}
	return t
}
