package store

import (
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_CategoryReport(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReportRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN assets a ON a.category_id = c.id AND a.location_id = $6 GROUP BY c.id, c.name ORDER BY total DESC, c.id ASC LIMIT 20 OFFSET 0")).
		WithArgs("ASSIGNED", "AVAILABLE", "NOT_AVAILABLE", "WAITING_FOR_RECYCLING", "RECYCLED", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "total", "assigned", "available", "not_available", "waiting_for_recycling", "recycled"}).
			AddRow(int64(1), "Laptop", int64(5), int64(2), int64(1), int64(1), int64(1), int64(0)).
			AddRow(int64(2), "Monitor", int64(0), int64(0), int64(0), int64(0), int64(0), int64(0)))

	page := models.PageRequest{PageNumber: 1, PageSize: 20, OrderBy: "total", SortDir: "DESC"}
	reports, total, err := repo.CategoryReport(testContext(), 1, page)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, reports, 2)
	assert.Equal(t, models.CategoryReport{
		CategoryID: 1, Category: "Laptop", Total: 5, Assigned: 2, Available: 1, NotAvailable: 1, WaitingForRecycling: 1,
	}, reports[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
