package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/models"
)

type locationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	return &locationRepository{
		db:     db,
		logger: logger,
	}
}

func selectLocations() sq.SelectBuilder {
	return psql.Select("id", "name", "code", "version", "created_at").From("locations")
}

func (r *locationRepository) FindAll(ctx context.Context) ([]models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(selectLocations().OrderBy("name ASC"))
	if err != nil {
		return nil, err
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.FindAll").Msg("failed to query locations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	locations := make([]models.Location, 0, 4)
	for rows.Next() {
		var l models.Location
		if err = rows.Scan(&l.ID, &l.Name, &l.Code, &l.Version, &l.CreatedAt); err != nil {
			log.Err(err).Str("func", "*locationRepository.FindAll").Msg("failed to scan location row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		locations = append(locations, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return locations, nil
}

func (r *locationRepository) FindByID(ctx context.Context, id int64) (models.Location, error) {
	query, args, err := toSQL(selectLocations().Where(sq.Eq{"id": id}))
	if err != nil {
		return models.Location{}, err
	}

	var l models.Location
	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).
		Scan(&l.ID, &l.Name, &l.Code, &l.Version, &l.CreatedAt)
	if err != nil {
		return models.Location{}, notFound(err)
	}

	return l, nil
}
