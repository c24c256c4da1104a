package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/asset-management/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type rowScanner interface {
	Scan(dest ...any) error
}

// sortColumns maps public sort keys to SQL expressions.
type sortColumns map[string]string

// allOf joins the non-nil specifications with AND.
func allOf(specs ...sq.Sqlizer) sq.And {
	out := make(sq.And, 0, len(specs))
	for _, s := range specs {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// containsAny matches rows where any of columns contains term, ignoring case.
func containsAny(term string, columns ...string) sq.Sqlizer {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return nil
	}

	pattern := "%" + escapeLike(term) + "%"
	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, sq.ILike{c: pattern})
	}
	return or
}

func equalIf[T comparable](column string, value T) sq.Sqlizer {
	var zero T
	if value == zero {
		return nil
	}
	return sq.Eq{column: value}
}

func notEqualIf[T comparable](column string, value T) sq.Sqlizer {
	var zero T
	if value == zero {
		return nil
	}
	return sq.NotEq{column: value}
}

func inIf[T any](column string, values []T) sq.Sqlizer {
	if len(values) == 0 {
		return nil
	}
	return sq.Eq{column: values}
}

func dateEqualIf(column string, date *models.Date) sq.Sqlizer {
	if date == nil || date.IsZero() {
		return nil
	}
	return sq.Eq{column: *date}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// orderAndPage applies ORDER BY for page.OrderBy (or defaultKey) with id
// as a stable tiebreaker, then LIMIT/OFFSET.
func orderAndPage(b sq.SelectBuilder, page models.PageRequest, columns sortColumns, defaultKey, idColumn string) (sq.SelectBuilder, error) {
	key := strings.TrimSpace(page.OrderBy)
	if key == "" {
		key = defaultKey
	}

	column, ok := columns[key]
	if !ok {
		return b, fmt.Errorf("%w: %q", ErrInvalidSortField, key)
	}

	direction := models.SortAsc
	if page.Descending() {
		direction = models.SortDesc
	}

	b = b.OrderBy(column+" "+direction, idColumn+" "+models.SortAsc)

	if limit := page.Limit(); limit > 0 {
		b = b.Limit(limit).Offset(page.Offset())
	}

	return b, nil
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func countRows(ctx context.Context, db DBTX, b sq.SelectBuilder) (int64, error) {
	query, args, err := toSQL(b)
	if err != nil {
		return 0, err
	}

	var total int64
	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

func exists(ctx context.Context, db DBTX, b sq.SelectBuilder) (bool, error) {
	query, args, err := toSQL(b.Prefix("SELECT EXISTS (").Suffix(")"))
	if err != nil {
		return false, err
	}

	var found bool
	if err = db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found, nil
}

// execOne executes a statement that must affect at least one row;
// otherwise it returns ErrNotFound.
func execOne(ctx context.Context, db DBTX, b sq.Sqlizer) error {
	query, args, err := toSQL(b)
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// notFound converts sql.ErrNoRows into ErrNotFound and wraps other scan errors.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrScanningRow, err)
}
