package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// QueryExecutor runs oracle-generated read queries and returns rows as
// generic maps for JSON rendering.
type QueryExecutor struct {
	db *sqlx.DB
}

func NewQueryExecutor(db *sqlx.DB) *QueryExecutor {
	return &QueryExecutor{db: db}
}

func (e *QueryExecutor) QueryRows(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := e.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []map[string]any
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, normalizeRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// normalizeRow converts driver byte slices and times into JSON-friendly
// values.
func normalizeRow(row map[string]any) map[string]any {
	for key, value := range row {
		switch v := value.(type) {
		case []byte:
			row[key] = string(v)
		case time.Time:
			row[key] = v.UTC().Format(time.RFC3339)
		}
	}
	return row
}
