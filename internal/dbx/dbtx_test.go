package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS file_requests (id INTEGER PRIMARY KEY, file_name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countRequests(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM file_requests`).Scan(&n))
	return n
}

func insertRequest(ctx context.Context, tx DBTX, name string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO file_requests(file_name) VALUES (?)`, name)
	return err
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := insertRequest(ctx, tx, "taxes.pdf"); err != nil {
			return err
		}
		return insertRequest(ctx, tx, "lease.pdf")
	})
	require.NoError(t, err)
	require.Equal(t, 2, countRequests(t, db))
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertRequest(ctx, tx, "taxes.pdf"))
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countRequests(t, db), "a failed batch leaves nothing behind")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countRequests(t, db))
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertRequest(ctx, tx, "taxes.pdf"))
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.ErrorContains(t, err, "begin tx")
	require.False(t, called)
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error { return nil })
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.ErrorContains(t, err, "commit tx")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackErrorJoined(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(sql.ErrConnDone)

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error { return boom })
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}
