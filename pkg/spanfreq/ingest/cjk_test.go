package ingest

import (
	"sort"
	"testing"
	"unicode/utf8"
)

func collect(enum interface {
	Enumerate(string, func(Candidate))
}, text string) []Candidate {
	var out []Candidate
	enum.Enumerate(text, func(c Candidate) {
		out = append(out, c)
	})
	return out
}

func tokens(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Token
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCJKRuns(t *testing.T) {
	runs := CJKRuns("我爱abc学习，天天向上!")
	want := []string{"我爱", "学习", "天天向上"}
	if !equalStrings(runs, want) {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	if len(CJKRuns("hello world")) != 0 {
		t.Error("Latin text should have no CJK runs")
	}
}

func TestCJKBruteForce(t *testing.T) {
	cands := collect(NewCJKEnumerator(3), "我爱学习")
	want := []string{"我爱学", "我爱学习", "爱学习"}
	sort.Strings(want)
	if got := tokens(cands); !equalStrings(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for _, c := range cands {
		if c.Source != "我爱学习" {
			t.Errorf("provenance of %q = %q, want the run", c.Token, c.Source)
		}
		if c.Length != utf8.RuneCountInString(c.Token) {
			t.Errorf("length of %q = %d", c.Token, c.Length)
		}
	}
}

func TestCJKProvenanceIsRun(t *testing.T) {
	cands := collect(NewCJKEnumerator(2), "苹果,香蕉")
	for _, c := range cands {
		if c.Source != "苹果" && c.Source != "香蕉" {
			t.Errorf("unexpected provenance %q", c.Source)
		}
	}
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}
}

func TestCJKWindowCap(t *testing.T) {
	run := "一二三四五六七八九十百千万"
	cands := collect(NewCJKEnumerator(1), run)
	n := utf8.RuneCountInString(run)

	expected := 0
	for start := 0; start < n; start++ {
		for end := start + 1; end <= n && end-start <= MaxCJKWindow; end++ {
			expected++
		}
	}
	if len(cands) != expected {
		t.Fatalf("expected %d candidates, got %d", expected, len(cands))
	}
	for _, c := range cands {
		if c.Length > MaxCJKWindow {
			t.Errorf("token %q exceeds window", c.Token)
		}
	}
}

func TestCJKMinLengthAboveRun(t *testing.T) {
	if cands := collect(NewCJKEnumerator(5), "我爱学习"); len(cands) != 0 {
		t.Fatalf("expected no candidates, got %v", tokens(cands))
	}
	if cands := collect(NewCJKEnumerator(11), "一二三四五六七八九十百千"); len(cands) != 0 {
		t.Fatalf("min length above the window should yield nothing, got %d", len(cands))
	}
}

func TestCJKSegmenterMode(t *testing.T) {
	enum := NewCJKEnumerator(2)
	enum.Segmenter = SegmenterFunc(func(text string) []string {
		return []string{"我", "爱", "学习", " ", "编程语言"}
	})

	text := "我爱学习 编程语言"
	cands := collect(enum, text)
	want := []string{"学习", "编程语言"}
	if got := tokens(cands); !equalStrings(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for _, c := range cands {
		if c.Source != text {
			t.Errorf("segmenter provenance = %q, want whole record", c.Source)
		}
	}
}

func TestNewCJKEnumeratorClampsMinLength(t *testing.T) {
	if e := NewCJKEnumerator(0); e.MinLength != 1 {
		t.Errorf("MinLength = %d, want 1", e.MinLength)
	}
}

func TestNormalizeFullWidth(t *testing.T) {
	if got := Normalize("ＡＢＣ"); got != "ABC" {
		t.Errorf("Normalize = %q, want ABC", got)
	}
}

func TestParseClass(t *testing.T) {
	for _, c := range []Class{CJK, Latin} {
		got, ok := ParseClass(c.String())
		if !ok || got != c {
			t.Errorf("ParseClass(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseClass("klingon"); ok {
		t.Error("unknown label should not parse")
	}
}
