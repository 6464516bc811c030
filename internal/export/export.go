// Package export writes result rows to XLSX, CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cognicore/spanfreq/pkg/spanfreq/rank"
)

// Header lists the exported columns in order.
var Header = []string{"token_length", "token", "weighted_count", "proportion", "language_class", "provenance"}

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Sheet1"

func record(r rank.Row) []string {
	return []string{
		strconv.Itoa(r.Length),
		r.Token,
		strconv.FormatFloat(r.Count, 'f', -1, 64),
		r.Proportion,
		r.ClassLabel(),
		r.Provenance,
	}
}

// WriteCSV writes a header line followed by one line per row.
func WriteCSV(w io.Writer, rows []rank.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteXLSX writes rows to a new workbook at path. Numeric columns are
// stored as numbers.
func WriteXLSX(path string, rows []rank.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	// a new workbook starts with a single default sheet
	if name := f.GetSheetName(0); name != SheetName {
		if err := f.SetSheetName(name, SheetName); err != nil {
			return err
		}
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.Length, r.Token, r.Count, r.Proportion, r.ClassLabel(), r.Provenance}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return f.SaveAs(path)
}

// Format picks an output format from a file extension.
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return "xlsx"
	case ".csv":
		return "csv"
	default:
		return "json"
	}
}
