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

const (
	categoryNameConstraint = "categories_name_key"
	categoryCodeConstraint = "categories_code_key"
)

type categoryRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func selectCategories() sq.SelectBuilder {
	return psql.Select("id", "name", "code", "version", "created_at").From("categories")
}

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Version, &c.CreatedAt)
	return c, err
}

func (r *categoryRepository) Create(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(psql.Insert("categories").
		Columns("name", "code").
		Values(category.Name, category.Code).
		Suffix("RETURNING id, version, created_at"))
	if err != nil {
		return models.Category{}, err
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).
		Scan(&category.ID, &category.Version, &category.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.Create").Msg("failed to insert category")

		if postgresError(err) == pgerrcode.UniqueViolation {
			switch constraintName(err) {
			case categoryNameConstraint:
				return models.Category{}, ErrCategoryNameExists
			case categoryCodeConstraint:
				return models.Category{}, ErrCategoryCodeExists
			}
		}
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(selectCategories().OrderBy("name ASC"))
	if err != nil {
		return nil, err
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.FindAll").Msg("failed to query categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		c, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (models.Category, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (models.Category, error) {
	return r.findOne(ctx, sq.Expr("LOWER(name) = LOWER(?)", name))
}

func (r *categoryRepository) FindByCode(ctx context.Context, code string) (models.Category, error) {
	return r.findOne(ctx, sq.Expr("UPPER(code) = UPPER(?)", code))
}

func (r *categoryRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Category, error) {
	query, args, err := toSQL(selectCategories().Where(where))
	if err != nil {
		return models.Category{}, err
	}

	c, err := scanCategory(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Category{}, notFound(err)
	}

	return c, nil
}

func (r *categoryRepository) NextAssetSequence(ctx context.Context, categoryID int64) (models.Category, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(psql.Update("categories").
		Set("asset_sequence", sq.Expr("asset_sequence + 1")).
		Where(sq.Eq{"id": categoryID}).
		Suffix("RETURNING id, name, code, version, created_at, asset_sequence"))
	if err != nil {
		return models.Category{}, 0, err
	}

	var (
		c   models.Category
		seq int64
	)
	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.Name, &c.Code, &c.Version, &c.CreatedAt, &seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, 0, ErrNotFound
		}
		log.Err(err).Str("func", "*categoryRepository.NextAssetSequence").Int64("category_id", categoryID).Msg("failed to lock category")
		return models.Category{}, 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return c, seq, nil
}
