package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ctxKey string

const connKey ctxKey = "db_conn"

// WithConn returns a context carrying the given transaction or connection.
// Repositories pick it up via ConnFromContext so that multiple repository
// calls can share one transaction.
func WithConn(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, connKey, tx)
}

// ConnFromContext returns the transaction stored in the context, or nil
// when the caller did not open one.
func ConnFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(connKey).(pgx.Tx)
	return tx
}

// WithTx runs fn inside a transaction. The transaction is attached to the
// context passed to fn; it commits when fn returns nil and rolls back
// otherwise.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(WithConn(ctx, tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
