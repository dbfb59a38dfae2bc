package testutil

import (
	"database/sql"
	"testing"

	"github.com/ajrivet/tassel/internal/db"
	"github.com/ajrivet/tassel/internal/storage"
)

// NewTestDB opens a migrated in-memory SQLite database, closed with the
// test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestStore returns a SQLite-backed key-value store over a fresh
// in-memory database.
func NewTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	return storage.NewSQLiteStore(NewTestDB(t))
}
