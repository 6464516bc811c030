package analytics

import (
	"sort"

	"github.com/cognicore/spanfreq/pkg/spanfreq/ingest"
)

// TokenStats accumulates one token's weighted count and the distinct
// provenance strings that produced it.
type TokenStats struct {
	Length  int
	Weight  float64
	Sources map[string]struct{}
}

// Tally aggregates weighted token occurrences per language class.
// Tokens of different classes never share an entry.
type Tally struct {
	records int64
	tokens  map[ingest.Class]map[string]*TokenStats
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{
		tokens: map[ingest.Class]map[string]*TokenStats{
			ingest.CJK:   make(map[string]*TokenStats),
			ingest.Latin: make(map[string]*TokenStats),
		},
	}
}

// Add records one candidate occurrence with weight w.
func (t *Tally) Add(class ingest.Class, c ingest.Candidate, w float64) {
	m := t.classMap(class)
	st, ok := m[c.Token]
	if !ok {
		st = &TokenStats{Length: c.Length, Sources: make(map[string]struct{})}
		m[c.Token] = st
	}
	st.Weight += w
	st.Sources[c.Source] = struct{}{}
}

// MarkRecord counts one processed record.
func (t *Tally) MarkRecord() {
	t.records++
}

// Records returns the number of records marked so far.
func (t *Tally) Records() int64 {
	return t.records
}

// Len returns the number of distinct tokens of a class.
func (t *Tally) Len(class ingest.Class) int {
	return len(t.tokens[class])
}

// Merge folds other into t: weights are summed and provenance sets are
// unioned. other must not be used concurrently.
func (t *Tally) Merge(other *Tally) {
	if other == nil {
		return
	}
	t.records += other.records
	for class, src := range other.tokens {
		dst := t.classMap(class)
		for tok, st := range src {
			cur, ok := dst[tok]
			if !ok {
				cur = &TokenStats{Length: st.Length, Sources: make(map[string]struct{}, len(st.Sources))}
				dst[tok] = cur
			}
			cur.Weight += st.Weight
			for s := range st.Sources {
				cur.Sources[s] = struct{}{}
			}
		}
	}
}

func (t *Tally) classMap(class ingest.Class) map[string]*TokenStats {
	m, ok := t.tokens[class]
	if !ok {
		m = make(map[string]*TokenStats)
		t.tokens[class] = m
	}
	return m
}

// Entry is a flattened token record produced by Snapshot.
type Entry struct {
	Class   ingest.Class
	Token   string
	Length  int
	Weight  float64
	Sources []string // sorted
}

// Snapshot flattens the tally, CJK entries first, then Latin. Within a
// class entries are ordered by token text so the output is deterministic.
func (t *Tally) Snapshot() []Entry {
	out := make([]Entry, 0, t.Len(ingest.CJK)+t.Len(ingest.Latin))
	for _, class := range []ingest.Class{ingest.CJK, ingest.Latin} {
		m := t.tokens[class]
		keys := make([]string, 0, len(m))
		for tok := range m {
			keys = append(keys, tok)
		}
		sort.Strings(keys)
		for _, tok := range keys {
			st := m[tok]
			sources := make([]string, 0, len(st.Sources))
			for s := range st.Sources {
				sources = append(sources, s)
			}
			sort.Strings(sources)
			out = append(out, Entry{
				Class:   class,
				Token:   tok,
				Length:  st.Length,
				Weight:  st.Weight,
				Sources: sources,
			})
		}
	}
	return out
}
