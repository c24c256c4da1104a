package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/models"
	"github.com/jackc/pgerrcode"
)

var assetColumns = []string{
	"a.id", "a.asset_code", "a.name", "a.specification", "a.installed_date", "a.state",
	"a.version", "a.created_at", "a.updated_at",
	"c.id", "c.name", "c.code",
	"l.id", "l.name", "l.code",
}

var assetSortColumns = sortColumns{
	"assetCode":     "a.asset_code",
	"name":          "a.name",
	"category":      "c.name",
	"state":         "a.state",
	"installedDate": "a.installed_date",
}

type assetRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAssetRepository(db *DB, logger *logger.Logger) AssetRepository {
	return &assetRepository{
		db:     db,
		logger: logger,
	}
}

func selectAssets(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("assets a").
		Join("categories c ON c.id = a.category_id").
		Join("locations l ON l.id = a.location_id")
}

func scanAsset(row rowScanner) (models.Asset, error) {
	var a models.Asset
	err := row.Scan(
		&a.ID, &a.AssetCode, &a.Name, &a.Specification, &a.InstalledDate, &a.State,
		&a.Version, &a.CreatedAt, &a.UpdatedAt,
		&a.Category.ID, &a.Category.Name, &a.Category.Code,
		&a.Location.ID, &a.Location.Name, &a.Location.Code,
	)
	return a, err
}

func (r *assetRepository) Create(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(psql.Insert("assets").
		Columns("asset_code", "name", "specification", "installed_date", "state", "category_id", "location_id").
		Values(asset.AssetCode, asset.Name, asset.Specification, asset.InstalledDate, asset.State,
			asset.Category.ID, asset.Location.ID).
		Suffix("RETURNING id, version, created_at, updated_at"))
	if err != nil {
		return models.Asset{}, err
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).
		Scan(&asset.ID, &asset.Version, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*assetRepository.Create").Str("asset_code", asset.AssetCode).Msg("failed to insert asset")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Asset{}, ErrReferenceViolation
		}
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return asset, nil
}

func (r *assetRepository) FindByID(ctx context.Context, id int64) (models.Asset, error) {
	return r.findOne(ctx, selectAssets(assetColumns...).Where(sq.Eq{"a.id": id}))
}

// FindByIDForUpdate loads the asset and locks its row until the
// surrounding transaction ends.
func (r *assetRepository) FindByIDForUpdate(ctx context.Context, id int64) (models.Asset, error) {
	return r.findOne(ctx, selectAssets(assetColumns...).Where(sq.Eq{"a.id": id}).Suffix("FOR UPDATE OF a"))
}

func (r *assetRepository) findOne(ctx context.Context, b sq.SelectBuilder) (models.Asset, error) {
	query, args, err := toSQL(b)
	if err != nil {
		return models.Asset{}, err
	}

	asset, err := scanAsset(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", "*assetRepository.findOne").Msg("failed to scan asset")
		}
		return models.Asset{}, notFound(err)
	}

	return asset, nil
}

func (r *assetRepository) specification(filter AssetFilter) sq.And {
	return allOf(
		containsAny(filter.Search, "a.name", "a.asset_code"),
		inIf("a.state", filter.States),
		inIf("a.category_id", filter.CategoryIDs),
		equalIf("a.location_id", filter.LocationID),
	)
}

func (r *assetRepository) FindAll(ctx context.Context, filter AssetFilter, page models.PageRequest) ([]models.Asset, int64, error) {
	log := logger.FromContext(ctx)
	db := r.db.conn(ctx)
	where := r.specification(filter)

	list, err := orderAndPage(selectAssets(assetColumns...).Where(where), page, assetSortColumns, "assetCode", "a.id")
	if err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, db, selectAssets("COUNT(*)").Where(where))
	if err != nil {
		log.Err(err).Str("func", "*assetRepository.FindAll").Msg("failed to count assets")
		return nil, 0, err
	}

	query, args, err := toSQL(list)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assetRepository.FindAll").Msg("failed to query assets")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0, page.Limit())
	for rows.Next() {
		asset, scanErr := scanAsset(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*assetRepository.FindAll").Msg("failed to scan asset row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		assets = append(assets, asset)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assets, total, nil
}

func (r *assetRepository) Update(ctx context.Context, asset models.Asset) (models.Asset, error) {
	query, args, err := toSQL(psql.Update("assets").
		Set("name", asset.Name).
		Set("specification", asset.Specification).
		Set("installed_date", asset.InstalledDate).
		Set("state", asset.State).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": asset.ID, "version": asset.Version}).
		Suffix("RETURNING version, updated_at"))
	if err != nil {
		return models.Asset{}, err
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&asset.Version, &asset.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, ErrVersionConflict
		}
		logger.FromContext(ctx).Err(err).Str("func", "*assetRepository.Update").Int64("asset_id", asset.ID).Msg("failed to update asset")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return asset, nil
}

func (r *assetRepository) UpdateState(ctx context.Context, id int64, state models.AssetState) error {
	err := execOne(ctx, r.db.conn(ctx), psql.Update("assets").
		Set("state", state).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "*assetRepository.UpdateState").
			Int64("asset_id", id).
			Str("state", string(state)).
			Msg("failed to update asset state")
	}

	return err
}

func (r *assetRepository) Delete(ctx context.Context, id int64) error {
	err := execOne(ctx, r.db.conn(ctx), psql.Delete("assets").Where(sq.Eq{"id": id}))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrReferenceViolation
		}
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*assetRepository.Delete").Int64("asset_id", id).Msg("failed to delete asset")
		}
		return err
	}

	return nil
}
