package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/migrations"
)

// maxTxAttempts bounds how many times WithinTx runs fn when the database
// reports a retryable failure (serialization failure, deadlock).
const maxTxAttempts = 3

// DBTX is the subset of *sql.DB and *sql.Tx used by repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

type txKey struct{}

// conn returns the transaction bound to ctx by WithinTx, or the pool.
func (db *DB) conn(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

// WithinTx runs fn in a transaction. Repositories called with the context
// passed to fn take part in the transaction. A nested call reuses the
// outer transaction.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runInTx(ctx, fn)
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "*DB.WithinTx").
			Int("attempt", attempt).
			Msg("retrying transaction")
	}

	return err
}

func (db *DB) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*DB.WithinTx").Msg("failed to rollback transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.WithinTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
