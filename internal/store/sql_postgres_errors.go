package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator decides whether a failed transaction may be run again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier classifies pgx errors by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports Retryable for serialization failures, deadlocks and
// dropped connections. Constraint violations and everything that is not
// a *pgconn.PgError are NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch pgErr.Code {
	case pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.TransactionRollback,
		pgerrcode.LockNotAvailable:
		return Retryable
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
