package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

// Query runs arbitrary SQL and packs the result into a generic table.
// Duplicate column names (common in hand-written joins) get a _n suffix
// so the result stays addressable by name.
func Query(ctx context.Context, db *sql.DB, sqlText string, args ...any) (*models.Table, error) {
	rows, err := db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	table := &models.Table{
		Columns: dedupeColumns(cols),
		Rows:    [][]any{},
	}

	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range values {
			// sqlite hands text back as []byte; strings render better
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return table, nil
}

func dedupeColumns(cols []string) []string {
	seen := make(map[string]int, len(cols))
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		if n, ok := seen[col]; ok {
			seen[col] = n + 1
			out = append(out, fmt.Sprintf("%s_%d", col, n+1))
			continue
		}
		seen[col] = 0
		out = append(out, col)
	}
	return out
}
