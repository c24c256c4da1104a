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

var userColumns = []string{
	"u.id", "u.staff_code", "u.first_name", "u.last_name", "u.username", "u.hash_password",
	"u.dob", "u.join_date", "u.gender", "u.role", "u.status",
	"u.version", "u.created_at", "u.updated_at",
	"l.id", "l.name", "l.code",
}

var userSortColumns = sortColumns{
	"staffCode": "u.staff_code",
	"fullName":  "u.first_name || ' ' || u.last_name",
	"username":  "u.username",
	"joinDate":  "u.join_date",
	"role":      "u.role",
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Users are always loaded together with their location.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func selectUsers(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("users u").
		Join("locations l ON l.id = u.location_id")
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		staffCode sql.NullString
	)

	err := row.Scan(
		&user.ID, &staffCode, &user.FirstName, &user.LastName, &user.Username, &user.HashPassword,
		&user.DOB, &user.JoinDate, &user.Gender, &user.Role, &user.Status,
		&user.Version, &user.CreatedAt, &user.UpdatedAt,
		&user.Location.ID, &user.Location.Name, &user.Location.Code,
	)
	user.StaffCode = staffCode.String

	return user, err
}

// Create inserts a user without a staff code. Server-assigned fields are
// filled from the RETURNING clause.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(psql.Insert("users").
		Columns("first_name", "last_name", "username", "hash_password", "dob", "join_date",
			"gender", "role", "status", "location_id").
		Values(user.FirstName, user.LastName, user.Username, user.HashPassword, user.DOB, user.JoinDate,
			user.Gender, user.Role, user.Status, user.Location.ID).
		Suffix("RETURNING id, version, created_at, updated_at"))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("failed to build query")
		return models.User{}, err
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Version, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Str("username", user.Username).Msg("failed to insert user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.User{}, ErrReferenceViolation
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return user, nil
}

func (r *userRepository) UpdateStaffCode(ctx context.Context, id int64, staffCode string) error {
	err := execOne(ctx, r.db.conn(ctx), psql.Update("users").
		Set("staff_code", staffCode).
		Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*userRepository.UpdateStaffCode").
			Int64("user_id", id).
			Msg("failed to set staff code")
		return err
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindByID", sq.Eq{"u.id": id})
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindByUsername", sq.Eq{"u.username": username})
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(selectUsers(userColumns...).Where(where))
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, err
	}

	user, err := scanUser(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", funcName).Msg("failed to scan user")
		}
		return models.User{}, notFound(err)
	}

	return user, nil
}

func (r *userRepository) FindUsernamesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(psql.Select("username").
		From("users").
		Where(sq.Like{"username": escapeLike(prefix) + "%"}))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsernamesByPrefix").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsernamesByPrefix").Msg("failed to query usernames")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	usernames := make([]string, 0, 8)
	for rows.Next() {
		var username string
		if err = rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		usernames = append(usernames, username)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return usernames, nil
}

func (r *userRepository) specification(filter UserFilter) sq.And {
	return allOf(
		containsAny(filter.Search, "u.first_name || ' ' || u.last_name", "u.staff_code"),
		equalIf("u.role", filter.Role),
		equalIf("u.location_id", filter.LocationID),
		sq.NotEq{"u.status": models.UserStatusDisabled},
		notEqualIf("u.id", filter.ExcludeUserID),
	)
}

func (r *userRepository) FindAll(ctx context.Context, filter UserFilter, page models.PageRequest) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)
	db := r.db.conn(ctx)
	where := r.specification(filter)

	list, err := orderAndPage(selectUsers(userColumns...).Where(where), page, userSortColumns, "fullName", "u.id")
	if err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, db, selectUsers("COUNT(*)").Where(where))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("failed to count users")
		return nil, 0, err
	}

	query, args, err := toSQL(list)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("failed to query users")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, page.Limit())
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.FindAll").Msg("failed to scan user row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, total, nil
}

// Update writes the editable profile fields if user.Version still matches
// the stored version, and returns the user with the bumped version.
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(psql.Update("users").
		Set("dob", user.DOB).
		Set("join_date", user.JoinDate).
		Set("gender", user.Gender).
		Set("role", user.Role).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": user.ID, "version": user.Version}).
		Suffix("RETURNING version, updated_at"))
	if err != nil {
		return models.User{}, err
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&user.Version, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrVersionConflict
		}
		log.Err(err).Str("func", "*userRepository.Update").Int64("user_id", user.ID).Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error {
	err := execOne(ctx, r.db.conn(ctx), psql.Update("users").
		Set("status", status).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "*userRepository.UpdateStatus").
			Int64("user_id", id).
			Msg("failed to update user status")
	}

	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, hashPassword string, status models.UserStatus) error {
	err := execOne(ctx, r.db.conn(ctx), psql.Update("users").
		Set("hash_password", hashPassword).
		Set("status", status).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "*userRepository.UpdatePassword").
			Int64("user_id", id).
			Msg("failed to update password")
	}

	return err
}
