package database

import (
	"context"
	"database/sql"
)

// DBTX is an interface that both *sql.DB and *sql.Tx implement.
// This allows the storage gateway to work with either a plain connection
// or a transaction, which is essential for testing with transaction-based
// isolation.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Ensure types implement the interface at compile time.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
