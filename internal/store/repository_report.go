package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/models"
)

var reportSortColumns = sortColumns{
	"category":            "c.name",
	"total":               "total",
	"assigned":            "assigned",
	"available":           "available",
	"notAvailable":        "not_available",
	"waitingForRecycling": "waiting_for_recycling",
	"recycled":            "recycled",
}

type reportRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

func countState(state models.AssetState, alias string) sq.Sqlizer {
	return sq.Expr("COUNT(a.id) FILTER (WHERE a.state = ?) AS "+alias, state)
}

// CategoryReport counts the assets of every category per state. Categories
// without assets in the location are reported with zero counts.
func (r *reportRepository) CategoryReport(ctx context.Context, locationID int64, page models.PageRequest) ([]models.CategoryReport, int64, error) {
	log := logger.FromContext(ctx)
	db := r.db.conn(ctx)

	list := psql.Select("c.id", "c.name").
		Column("COUNT(a.id) AS total").
		Column(countState(models.AssetStateAssigned, "assigned")).
		Column(countState(models.AssetStateAvailable, "available")).
		Column(countState(models.AssetStateNotAvailable, "not_available")).
		Column(countState(models.AssetStateWaitingForRecycling, "waiting_for_recycling")).
		Column(countState(models.AssetStateRecycled, "recycled")).
		From("categories c").
		LeftJoin("assets a ON a.category_id = c.id AND a.location_id = ?", locationID).
		GroupBy("c.id", "c.name")

	list, err := orderAndPage(list, page, reportSortColumns, "category", "c.id")
	if err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, db, psql.Select("COUNT(*)").From("categories"))
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.CategoryReport").Msg("failed to count categories")
		return nil, 0, err
	}

	query, args, err := toSQL(list)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.CategoryReport").Int64("location_id", locationID).Msg("failed to query report")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reports := make([]models.CategoryReport, 0, page.Limit())
	for rows.Next() {
		var rep models.CategoryReport
		err = rows.Scan(&rep.CategoryID, &rep.Category, &rep.Total, &rep.Assigned, &rep.Available,
			&rep.NotAvailable, &rep.WaitingForRecycling, &rep.Recycled)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reports = append(reports, rep)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reports, total, nil
}
