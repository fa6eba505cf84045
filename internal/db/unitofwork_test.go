package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/courseplan/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUnitOfWork(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func courseExists(t *testing.T, uow *db.SQLiteUnitOfWork, code string) bool {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses WHERE code = ?`, code).Scan(&n)
	})
	require.NoError(t, err)
	return n > 0
}

func insertCourse(ctx context.Context, tx db.DBTX, code string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO courses (code, credits, position) VALUES (?, 3, 0)`, code)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openUnitOfWork(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertCourse(ctx, tx, "CS101")
	})
	require.NoError(t, err)

	assert.True(t, courseExists(t, uow, "CS101"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openUnitOfWork(t)
	errBoom := errors.New("import aborted")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertCourse(ctx, tx, "CS102"); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	assert.False(t, courseExists(t, uow, "CS102"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openUnitOfWork(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertCourse(ctx, tx, "CS103")
			panic("boom")
		})
	})

	assert.False(t, courseExists(t, uow, "CS103"))
}

func TestWithinTx_FileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "courseplan.db")

	first, err := db.OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, db.NewSQLiteUnitOfWork(first).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return insertCourse(ctx, tx, "CS104")
	}))
	require.NoError(t, first.Close())

	second, err := db.OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	var mode string
	require.NoError(t, second.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
	assert.True(t, courseExists(t, db.NewSQLiteUnitOfWork(second), "CS104"))
}
