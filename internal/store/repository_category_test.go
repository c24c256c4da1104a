package store

import (
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "success"},
		{
			name:    "duplicate name",
			dbErr:   pgConstraintError(pgerrcode.UniqueViolation, categoryNameConstraint),
			wantErr: ErrCategoryNameExists,
		},
		{
			name:    "duplicate code",
			dbErr:   pgConstraintError(pgerrcode.UniqueViolation, categoryCodeConstraint),
			wantErr: ErrCategoryCodeExists,
		},
		{
			name:    "check violation",
			dbErr:   pgError(pgerrcode.CheckViolation),
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewCategoryRepository(newDBFromSQL(db), logger.Nop())

			exp := mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories (name,code) VALUES ($1,$2) RETURNING id, version, created_at")).
				WithArgs("Laptop", "LA")
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnRows(sqlmock.NewRows([]string{"id", "version", "created_at"}).AddRow(int64(1), int64(0), testNow))
			}

			created, err := repo.Create(testContext(), models.Category{Name: "Laptop", Code: "LA"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), created.ID)
			assert.Equal(t, "LA", created.Code)
		})
	}
}

func TestCategoryRepository_FindAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCategoryRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, code, version, created_at FROM categories ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "version", "created_at"}).
			AddRow(int64(1), "Laptop", "LA", int64(0), testNow).
			AddRow(int64(2), "Monitor", "MO", int64(0), testNow))

	categories, err := repo.FindAll(testContext())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "MO", categories[1].Code)
}

func TestCategoryRepository_FindByName_IgnoresCase(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCategoryRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(name) = LOWER($1)")).
		WithArgs("laptop").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByName(testContext(), "laptop")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryRepository_NextAssetSequence(t *testing.T) {
	t.Run("increments the counter", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCategoryRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE categories SET asset_sequence = asset_sequence + 1 WHERE id = $1 RETURNING id, name, code, version, created_at, asset_sequence")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "version", "created_at", "asset_sequence"}).
				AddRow(int64(1), "Laptop", "LA", int64(0), testNow, int64(12)))

		category, seq, err := repo.NextAssetSequence(testContext(), 1)
		require.NoError(t, err)
		assert.Equal(t, "LA", category.Code)
		assert.Equal(t, int64(12), seq)
		assert.Equal(t, "LA000012", models.GenerateAssetCode(category.Code, seq))
	})

	t.Run("missing category", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCategoryRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery("UPDATE categories").WillReturnError(sql.ErrNoRows)

		_, _, err := repo.NextAssetSequence(testContext(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLocationRepository(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLocationRepository(newDBFromSQL(db), logger.Nop())
	columns := []string{"id", "name", "code", "version", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, code, version, created_at FROM locations ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(3), "Da Nang", "DN", int64(0), testNow).
			AddRow(int64(1), "Ha Noi", "HN", int64(0), testNow))
	mock.ExpectQuery(regexp.QuoteMeta("FROM locations WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	locations, err := repo.FindAll(testContext())
	require.NoError(t, err)
	assert.Len(t, locations, 2)

	_, err = repo.FindByID(testContext(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
