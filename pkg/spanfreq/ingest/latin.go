package ingest

import "strings"

// isASCIILetter reports whether r is an ASCII letter
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Words returns the maximal runs of ASCII letters in text. Digits,
// punctuation, whitespace and non-ASCII characters all act as separators.
func Words(text string) []string {
	var words []string
	start := -1
	for i, r := range text {
		if isASCIILetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}

// LatinEnumerator cuts contiguous word spans out of a record.
//
// All words of a record form one sequence, so a span may cross the
// punctuation or CJK text that separated two words. Span length has no
// upper bound.
type LatinEnumerator struct {
	MinWords int
}

// NewLatinEnumerator creates an enumerator. MinWords below 1 is raised to 1.
func NewLatinEnumerator(minWords int) *LatinEnumerator {
	if minWords < 1 {
		minWords = 1
	}
	return &LatinEnumerator{MinWords: minWords}
}

// Enumerate calls emit once per span [i, j) with j-i >= MinWords. The
// provenance of every span is the space-joined word sequence.
func (e *LatinEnumerator) Enumerate(text string, emit func(Candidate)) {
	words := Words(text)
	k := len(words)
	if k < e.MinWords {
		return
	}

	seq := strings.Join(words, " ")
	// starts[i] is the byte offset of word i within seq; ends[i] its end
	starts := make([]int, k)
	ends := make([]int, k)
	off := 0
	for i, w := range words {
		starts[i] = off
		ends[i] = off + len(w)
		off = ends[i] + 1
	}

	for i := 0; i < k; i++ {
		for j := i + e.MinWords; j <= k; j++ {
			emit(Candidate{
				Token:  seq[starts[i]:ends[j-1]],
				Length: j - i,
				Source: seq,
			})
		}
	}
}
