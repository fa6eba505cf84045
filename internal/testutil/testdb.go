package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/courseplan/internal/db"
)

// NewTestDB opens a migrated in-memory database that is closed when the test
// ends.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	return openTestDB(t, db.MemoryPath)
}

// NewFileTestDB opens a migrated database file under t.TempDir and returns it
// with its path, for tests that reopen the same store.
func NewFileTestDB(t testing.TB) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courseplan.db")
	return openTestDB(t, path), path
}

func openTestDB(t testing.TB, path string) *sql.DB {
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
