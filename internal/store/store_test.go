package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return NewDB(db, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func sqlmockResult(affected int64) driver.Result {
	return sqlmock.NewResult(0, affected)
}
