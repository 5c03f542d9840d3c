package database

import (
	"context"
	"database/sql"
	"testing"
)

// TestDB returns a migrated in-memory SQLite database for testing.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := Connect(ctx, ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// CleanupKV removes all rows from the kv table for a clean test state.
func CleanupKV(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.ExecContext(context.Background(), "DELETE FROM kv"); err != nil {
		t.Fatalf("failed to clean kv table: %v", err)
	}
}
