package ingest

import (
	"sort"
	"testing"
)

func TestWords(t *testing.T) {
	got := Words("Hello, world! 42 times--again café")
	want := []string{"Hello", "world", "times", "again", "caf"}
	if !equalStrings(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestLatinSpans(t *testing.T) {
	cands := collect(NewLatinEnumerator(1), "I love learning")
	want := []string{"I", "love", "learning", "I love", "love learning", "I love learning"}
	sort.Strings(want)
	if got := tokens(cands); !equalStrings(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for _, c := range cands {
		if c.Source != "I love learning" {
			t.Errorf("provenance = %q", c.Source)
		}
	}
}

func TestLatinSpanLengths(t *testing.T) {
	for _, c := range collect(NewLatinEnumerator(1), "a bb ccc") {
		var words int
		for _, w := range Words(c.Token) {
			if w != "" {
				words++
			}
		}
		if c.Length != words {
			t.Errorf("length of %q = %d, want %d", c.Token, c.Length, words)
		}
	}
}

func TestLatinSpanCount(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve"
	k := len(Words(text))
	cands := collect(NewLatinEnumerator(1), text)
	if want := k * (k + 1) / 2; len(cands) != want {
		t.Fatalf("expected %d spans, got %d", want, len(cands))
	}
	longest := 0
	for _, c := range cands {
		if c.Length > longest {
			longest = c.Length
		}
	}
	if longest != k {
		t.Errorf("longest span = %d words, want %d", longest, k)
	}
}

func TestLatinCrossRunSpans(t *testing.T) {
	// punctuation and CJK break words but not the sequence
	cands := collect(NewLatinEnumerator(2), "deep.learning 很好 rocks")
	want := []string{"deep learning", "deep learning rocks", "learning rocks"}
	if got := tokens(cands); !equalStrings(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for _, c := range cands {
		if c.Source != "deep learning rocks" {
			t.Errorf("provenance = %q", c.Source)
		}
	}
}

func TestLatinMinWords(t *testing.T) {
	if cands := collect(NewLatinEnumerator(4), "only three words"); len(cands) != 0 {
		t.Fatalf("expected nothing, got %v", tokens(cands))
	}
	if cands := collect(NewLatinEnumerator(1), "12345 !!!"); len(cands) != 0 {
		t.Fatalf("expected nothing, got %v", tokens(cands))
	}
	if e := NewLatinEnumerator(-3); e.MinWords != 1 {
		t.Errorf("MinWords = %d, want 1", e.MinWords)
	}
}
