package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// LoadSQLite reads col.Text (and col.Weight) from every row of table,
// in rowid order.
func LoadSQLite(ctx context.Context, path, table string, col Column) (*Dataset, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	cols := quoteIdent(col.Text)
	if col.Weight != "" {
		cols += ", " + quoteIdent(col.Weight)
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", cols, quoteIdent(table))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	ds := &Dataset{}
	if col.Weight != "" {
		ds.Weights = []any{}
	}
	for rows.Next() {
		var text, weight any
		dest := []any{&text}
		if col.Weight != "" {
			dest = append(dest, &weight)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		ds.add(text, weight, col.Weight != "")
	}
	return ds, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
