package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// readSnapshot is used for multi-statement reads: every statement sees the
// same snapshot, so a listed note and its categories can never disagree.
var readSnapshot = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// TxManager manages database transactions using the context pattern.
// Nested calls are NOT supported: calling RunInTx inside a RunInTx
// callback will create a second independent transaction, which is a bug.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a read-write transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	return run(ctx, tx, fn)
}

// RunInReadTx executes fn within a REPEATABLE READ, READ ONLY transaction.
func (m *TxManager) RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, readSnapshot)
	if err != nil {
		return fmt.Errorf("begin read transaction: %w", err)
	}
	return run(ctx, tx, fn)
}

func run(ctx context.Context, tx pgx.Tx, fn func(ctx context.Context) error) error {
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
