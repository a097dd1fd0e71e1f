package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oluccaa/qualidade-sub001/internal/common"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE nodes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, "UPDATE nodes SET name = 'x'")
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.NoError(t, mock.ExpectationsWereMet(), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	called := false
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, common.ErrorNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, common.ErrorAlreadyExists},
		{"wrapped unique", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), common.ErrorAlreadyExists},
		{"foreign key", &pgconn.PgError{Code: "23503"}, common.ErrorNotFound},
		{"check", &pgconn.PgError{Code: "23514", Message: "folder metadata"}, common.ErrorValidation},
		{"bad uuid", &pgconn.PgError{Code: "22P02"}, common.ErrorValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapError("op", tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "op: ")
		})
	}

	other := errors.New("conn reset")
	assert.ErrorIs(t, MapError("op", other), other)
	assert.NoError(t, MapError("op", nil))
}

func TestExpectOne(t *testing.T) {
	assert.NoError(t, ExpectOne("op", sqlmock.NewResult(0, 1)))
	assert.ErrorIs(t, ExpectOne("op", sqlmock.NewResult(0, 0)), common.ErrorNotFound)
	assert.Error(t, ExpectOne("op", sqlmock.NewResult(0, 2)))
	assert.Error(t, ExpectOne("op", sqlmock.NewErrorResult(errors.New("x"))))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, Nullable(""))
	assert.Equal(t, "id", Nullable("id"))
}
