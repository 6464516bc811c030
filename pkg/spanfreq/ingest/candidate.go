// Package ingest enumerates candidate tokens from raw text records.
//
// Two language classes are produced: CJK substrings drawn from runs of
// ideographs, and Latin word spans drawn from ASCII letter runs. Every
// candidate carries the provenance string it was cut from.
package ingest

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Class identifies the language class of a token.
type Class int

const (
	CJK Class = iota
	Latin
)

// String returns the label used in reports and exports.
func (c Class) String() string {
	switch c {
	case CJK:
		return "cjk"
	case Latin:
		return "latin"
	default:
		return "unknown"
	}
}

// ParseClass maps a label back to a Class.
func ParseClass(s string) (Class, bool) {
	switch s {
	case "cjk", "CJK", "zh", "chinese":
		return CJK, true
	case "latin", "LATIN", "en", "english":
		return Latin, true
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(b []byte) error {
	parsed, ok := ParseClass(string(b))
	if !ok {
		return fmt.Errorf("unknown language class %q", b)
	}
	*c = parsed
	return nil
}

// Candidate is one token occurrence produced by an enumerator.
type Candidate struct {
	Token  string
	Length int    // characters for CJK, words for Latin
	Source string // provenance: the run, word sequence or record it came from
}

// Normalize applies NFKC folding, so full-width Latin letters become ASCII
// and CJK compatibility ideographs map onto the unified block.
func Normalize(text string) string {
	return norm.NFKC.String(text)
}
