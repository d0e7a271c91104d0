package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// QueryRower is satisfied by *sql.DB and *sql.Tx.
type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HasTable reports whether table exists in the current schema. Only an empty result means
// absent; driver and connection errors are returned.
func HasTable(ctx context.Context, q QueryRower, table string) (bool, error) {
	return probe(ctx, q, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table)
}

// HasColumn reports whether table.column exists, with the same error rules as HasTable.
func HasColumn(ctx context.Context, q QueryRower, table, column string) (bool, error) {
	return probe(ctx, q, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column)
}

func probe(ctx context.Context, q QueryRower, stmt string, args ...any) (bool, error) {
	var name sql.NullString
	err := q.QueryRowContext(ctx, stmt, args...).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("schema probe %v: %w", args, err)
	}
	return name.Valid && name.String != "", nil
}
