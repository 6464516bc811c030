// Package rank projects aggregated token stats into result rows and orders
// them by share of total weight.
package rank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cognicore/spanfreq/pkg/spanfreq/analytics"
	"github.com/cognicore/spanfreq/pkg/spanfreq/ingest"
	"github.com/cognicore/spanfreq/pkg/spanfreq/internalerr"
)

// ProvenanceSeparator joins the provenance strings of a row.
const ProvenanceSeparator = " | "

// Row is one line of the result table.
type Row struct {
	Length     int          `json:"token_length"`
	Token      string       `json:"token"`
	Count      float64      `json:"weighted_count"`
	Percent    float64      `json:"-"`
	Proportion string       `json:"proportion"` // Percent rendered as "X.XX%"
	Class      ingest.Class `json:"language_class"`
	Provenance string       `json:"provenance"`
}

// ClassLabel returns the row's language class label.
func (r Row) ClassLabel() string {
	return r.Class.String()
}

// FormatPercent renders a percentage with two decimals and a percent sign.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// Project converts tally entries into rows, using total as the denominator
// of every proportion. The rows come back sorted (see Sort).
func Project(entries []analytics.Entry, total float64) ([]Row, error) {
	if len(entries) == 0 {
		return []Row{}, nil
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("total weight %v: %w", total, internalerr.ErrDegenerateWeights)
	}

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		pct := e.Weight / total * 100
		rows = append(rows, Row{
			Length:     e.Length,
			Token:      e.Token,
			Count:      e.Weight,
			Percent:    pct,
			Proportion: FormatPercent(pct),
			Class:      e.Class,
			Provenance: strings.Join(e.Sources, ProvenanceSeparator),
		})
	}
	Sort(rows)
	return rows, nil
}

// Sort orders rows by share descending, then token length descending.
// Shares are compared at display precision, so rows printing the same
// proportion are tied. Remaining ties keep their input order.
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := displayShare(rows[i].Percent), displayShare(rows[j].Percent)
		if pi != pj {
			return pi > pj
		}
		return rows[i].Length > rows[j].Length
	})
}

// displayShare is a percentage rounded to the two decimals FormatPercent prints.
func displayShare(p float64) float64 {
	return math.Round(p * 100)
}

// Filter keeps rows whose class is among classes, preserving order.
// No classes means every row is kept.
func Filter(rows []Row, classes ...ingest.Class) []Row {
	if len(classes) == 0 {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		for _, c := range classes {
			if r.Class == c {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Limit returns at most n leading rows. n <= 0 means no limit.
func Limit(rows []Row, n int) []Row {
	if n <= 0 || len(rows) <= n {
		return rows
	}
	return rows[:n]
}
