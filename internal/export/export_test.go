package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/cognicore/spanfreq/pkg/spanfreq/ingest"
	"github.com/cognicore/spanfreq/pkg/spanfreq/rank"
)

var sample = []rank.Row{
	{Length: 2, Token: "苹果", Count: 4, Percent: 100, Proportion: "100.00%", Class: ingest.CJK, Provenance: "苹果 | 苹果派"},
	{Length: 2, Token: "I love", Count: 1.5, Percent: 37.5, Proportion: "37.50%", Class: ingest.Latin, Provenance: "I love"},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 lines, got %d", len(lines))
	}
	if lines[0][0] != "token_length" || lines[2][2] != "1.5" || lines[2][4] != "latin" {
		t.Errorf("unexpected csv %v", lines)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample); err != nil {
		t.Fatalf("write: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded[0]["language_class"] != "cjk" || decoded[0]["proportion"] != "100.00%" {
		t.Errorf("decoded = %v", decoded[0])
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteXLSX(path, sample); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1][1] != "苹果" || rows[1][3] != "100.00%" || rows[2][4] != "latin" {
		t.Errorf("unexpected sheet %v", rows)
	}
}

func TestFormat(t *testing.T) {
	tests := map[string]string{
		"out.XLSX": "xlsx",
		"a/b.csv":  "csv",
		"r.json":   "json",
		"no-ext":   "json",
	}
	for in, want := range tests {
		if got := Format(in); got != want {
			t.Errorf("Format(%q) = %s, want %s", in, got, want)
		}
	}
}
