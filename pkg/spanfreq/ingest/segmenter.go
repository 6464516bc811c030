package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segmenter splits a record into words. It is supplied by the caller and
// replaces brute-force CJK enumeration when set.
type Segmenter interface {
	Segment(text string) []string
}

// SegmenterFunc adapts a plain function to the Segmenter interface.
type SegmenterFunc func(text string) []string

// Segment calls f(text).
func (f SegmenterFunc) Segment(text string) []string {
	return f(text)
}

// Dictionary is a word list used for maximum-match segmentation
type Dictionary struct {
	words  map[string]struct{}
	maxLen int // longest entry, in runes
}

// NewDictionary builds a dictionary from the given words. Blank entries are
// ignored.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words)), maxLen: 1}
	for _, w := range words {
		d.Add(w)
	}
	return d
}

// Add inserts a word
func (d *Dictionary) Add(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	d.words[word] = struct{}{}
	if n := utf8.RuneCountInString(word); n > d.maxLen {
		d.maxLen = n
	}
}

// Contains reports whether word is in the dictionary
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Len returns the number of distinct words
func (d *Dictionary) Len() int {
	return len(d.words)
}

// DictSegmenter applies greedy forward maximum matching against a
// Dictionary. CJK characters not covered by any entry become single
// character words. Runs of other letters and digits pass through whole;
// whitespace and punctuation are dropped.
type DictSegmenter struct {
	dict *Dictionary
}

// NewDictSegmenter creates a segmenter over dict. A nil dict segments every
// CJK character on its own.
func NewDictSegmenter(dict *Dictionary) *DictSegmenter {
	if dict == nil {
		dict = NewDictionary(nil)
	}
	return &DictSegmenter{dict: dict}
}

// Segment implements Segmenter.
func (s *DictSegmenter) Segment(text string) []string {
	runes := []rune(text)
	var out []string

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case IsCJK(r):
			j := i
			for j < len(runes) && IsCJK(runes[j]) {
				j++
			}
			out = append(out, s.match(runes[i:j])...)
			i = j
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			j := i
			for j < len(runes) && !IsCJK(runes[j]) && (unicode.IsLetter(runes[j]) || unicode.IsNumber(runes[j])) {
				j++
			}
			out = append(out, string(runes[i:j]))
			i = j
		default:
			i++
		}
	}
	return out
}

// match segments one CJK run, trying the longest dictionary entry first.
func (s *DictSegmenter) match(run []rune) []string {
	var out []string
	i := 0
	for i < len(run) {
		size := 1
		maxN := s.dict.maxLen
		if remaining := len(run) - i; maxN > remaining {
			maxN = remaining
		}
		for n := maxN; n >= 2; n-- {
			if s.dict.Contains(string(run[i : i+n])) {
				size = n
				break
			}
		}
		out = append(out, string(run[i:i+size]))
		i += size
	}
	return out
}
