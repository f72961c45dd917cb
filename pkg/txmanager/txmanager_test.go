package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirillBalashovIS122/SkodaExpert/pkg/dbmetrics"
)

type stubTx struct {
	committed  bool
	rolledBack bool
}

func (t *stubTx) ExecContext(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *stubTx) QueryContext(_ context.Context, _ string, _ ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRowContext(_ context.Context, _ string, _ ...interface{}) *sql.Row {
	return nil
}

func (t *stubTx) Commit() error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type stubBeginner struct {
	txs      []*stubTx
	lastOpts *sql.TxOptions
	beginErr error
}

func (b *stubBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	b.lastOpts = opts
	tx := &stubTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func serializationFailure() error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	db := &stubBeginner{}
	m := NewTransactionManager(db)

	var sawTx bool
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		sawTx = dbmetrics.IsInTransaction(ctx)
		return nil
	})
	require.NoError(t, err)

	// fn видит транзакцию через контекст
	assert.True(t, sawTx)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].committed)
	assert.False(t, db.txs[0].rolledBack)
	assert.Equal(t, sql.LevelSerializable, db.lastOpts.Isolation)
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	db := &stubBeginner{}
	m := NewTransactionManager(db)

	fnErr := errors.New("task creation failed")
	err := m.DoSerializable(context.Background(), func(_ context.Context) error {
		return fnErr
	})
	assert.ErrorIs(t, err, fnErr)

	// Ошибка на любом шаге откатывает всю транзакцию
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	db := &stubBeginner{}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(_ context.Context) error {
		attempts++
		if attempts < 3 {
			return serializationFailure()
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, attempts)
	require.Len(t, db.txs, 3)
	assert.True(t, db.txs[0].rolledBack)
	assert.True(t, db.txs[1].rolledBack)
	assert.True(t, db.txs[2].committed)
}

func TestDoSerializable_RetriesExhausted(t *testing.T) {
	db := &stubBeginner{}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(_ context.Context) error {
		attempts++
		return serializationFailure()
	})
	assert.ErrorIs(t, err, ErrTransaction)
	assert.Equal(t, maxRetries, attempts)
}

func TestDoSerializable_NoRetryOnOrdinaryError(t *testing.T) {
	db := &stubBeginner{}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(_ context.Context) error {
		attempts++
		return errors.New("constraint violation")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDoSerializable_BeginError(t *testing.T) {
	db := &stubBeginner{beginErr: errors.New("connection refused")}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(_ context.Context) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrTransaction)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40001"}))
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40P01"}))
	assert.True(t, IsSerializationFailure(fmt.Errorf("query: %w", &pq.Error{Code: "40001"})))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("plain error")))
	assert.False(t, IsSerializationFailure(nil))
}
