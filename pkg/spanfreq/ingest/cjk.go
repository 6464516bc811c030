package ingest

import (
	"strings"
	"unicode/utf8"
)

// MaxCJKWindow caps the length of brute-force CJK substrings.
const MaxCJKWindow = 10

// IsCJK reports whether r lies in the ideograph range scanned for runs.
func IsCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FA5
}

// CJKRuns returns the maximal runs of CJK ideographs in text, in order.
func CJKRuns(text string) []string {
	var runs []string
	start := -1
	for i, r := range text {
		if IsCJK(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, text[start:])
	}
	return runs
}

// CJKEnumerator cuts CJK candidates out of a record.
//
// Without a Segmenter every substring of every run whose length is within
// [MinLength, MaxCJKWindow] is emitted with the run as provenance. With a
// Segmenter each segment of at least MinLength characters is emitted with
// the whole record as provenance.
type CJKEnumerator struct {
	MinLength int
	Segmenter Segmenter
}

// NewCJKEnumerator creates a brute-force enumerator. MinLength below 1 is
// raised to 1.
func NewCJKEnumerator(minLength int) *CJKEnumerator {
	if minLength < 1 {
		minLength = 1
	}
	return &CJKEnumerator{MinLength: minLength}
}

// Enumerate calls emit once per candidate occurrence in text.
func (e *CJKEnumerator) Enumerate(text string, emit func(Candidate)) {
	if e.Segmenter != nil {
		e.segmented(text, emit)
		return
	}
	for _, run := range CJKRuns(text) {
		e.bruteForce(run, emit)
	}
}

func (e *CJKEnumerator) bruteForce(run string, emit func(Candidate)) {
	// offsets[k] is the byte offset of the k-th rune; the final entry is len(run)
	offsets := make([]int, 0, utf8.RuneCountInString(run)+1)
	for i := range run {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(run))
	n := len(offsets) - 1
	if n < e.MinLength {
		return
	}

	for start := 0; start < n; start++ {
		last := start + MaxCJKWindow
		if last > n {
			last = n
		}
		for end := start + e.MinLength; end <= last; end++ {
			emit(Candidate{
				Token:  run[offsets[start]:offsets[end]],
				Length: end - start,
				Source: run,
			})
		}
	}
}

func (e *CJKEnumerator) segmented(text string, emit func(Candidate)) {
	for _, tok := range e.Segmenter.Segment(text) {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		n := utf8.RuneCountInString(tok)
		if n < e.MinLength {
			continue
		}
		emit(Candidate{Token: tok, Length: n, Source: text})
	}
}
