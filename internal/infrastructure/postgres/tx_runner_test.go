package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx implementa solo lo que usa TxRunner; el resto del pgx.Tx embebido queda nil.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (f *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

func TestTxRunner_CommitSiFnOK(t *testing.T) {
	tx := &fakeTx{}
	r := NewTxRunner(&fakeBeginner{tx: tx})

	var got Querier
	err := r.Run(context.Background(), func(q Querier) error {
		got = q
		return nil
	})
	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	assert.Same(t, tx, got)
}

func TestTxRunner_RollbackSiFnFalla(t *testing.T) {
	tx := &fakeTx{}
	r := NewTxRunner(&fakeBeginner{tx: tx})
	boom := errors.New("boom")

	err := r.Run(context.Background(), func(Querier) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestTxRunner_ErrorEnCommit(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("conn lost")}
	r := NewTxRunner(&fakeBeginner{tx: tx})

	err := r.Run(context.Background(), func(Querier) error { return nil })
	assert.ErrorContains(t, err, "commit transaction")
	assert.True(t, tx.rolledBack)
}

func TestTxRunner_ErrorEnBegin(t *testing.T) {
	r := NewTxRunner(&fakeBeginner{err: errors.New("no pool")})
	called := false

	err := r.Run(context.Background(), func(Querier) error { called = true; return nil })
	assert.ErrorContains(t, err, "begin transaction")
	assert.False(t, called)
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, isUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUndefinedTable(errors.New("42P01")))
}
