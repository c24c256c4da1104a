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

var assignmentColumns = []string{
	"asg.id", "asg.assigned_date", "asg.note", "asg.state", "asg.version", "asg.created_at", "asg.updated_at",
	"a.id", "a.asset_code", "a.name", "a.specification", "a.state", "a.location_id",
	"ut.id", "ut.username", "ut.first_name", "ut.last_name",
	"ub.id", "ub.username",
	"rr.id",
}

var assignmentSortColumns = sortColumns{
	"assetCode":    "a.asset_code",
	"assetName":    "a.name",
	"assignTo":     "ut.username",
	"assignBy":     "ub.username",
	"assignedDate": "asg.assigned_date",
	"state":        "asg.state",
}

type assignmentRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	return &assignmentRepository{
		db:     db,
		logger: logger,
	}
}

func selectAssignments(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("assignments asg").
		Join("assets a ON a.id = asg.asset_id").
		Join("users ut ON ut.id = asg.assign_to_id").
		Join("users ub ON ub.id = asg.assign_by_id").
		LeftJoin("returning_requests rr ON rr.assignment_id = asg.id")
}

func scanAssignment(row rowScanner) (models.Assignment, error) {
	var (
		a                  models.Assignment
		returningRequestID sql.NullInt64
	)

	err := row.Scan(
		&a.ID, &a.AssignedDate, &a.Note, &a.State, &a.Version, &a.CreatedAt, &a.UpdatedAt,
		&a.Asset.ID, &a.Asset.AssetCode, &a.Asset.Name, &a.Asset.Specification, &a.Asset.State, &a.Asset.Location.ID,
		&a.AssignTo.ID, &a.AssignTo.Username, &a.AssignTo.FirstName, &a.AssignTo.LastName,
		&a.AssignBy.ID, &a.AssignBy.Username,
		&returningRequestID,
	)
	if returningRequestID.Valid {
		a.ReturningRequestID = &returningRequestID.Int64
	}

	return a, err
}

func (r *assignmentRepository) Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(psql.Insert("assignments").
		Columns("asset_id", "assign_to_id", "assign_by_id", "assigned_date", "note", "state").
		Values(assignment.Asset.ID, assignment.AssignTo.ID, assignment.AssignBy.ID,
			assignment.AssignedDate, assignment.Note, assignment.State).
		Suffix("RETURNING id, version, created_at, updated_at"))
	if err != nil {
		return models.Assignment{}, err
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).
		Scan(&assignment.ID, &assignment.Version, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.Create").Int64("asset_id", assignment.Asset.ID).Msg("failed to insert assignment")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Assignment{}, ErrReferenceViolation
		}
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return assignment, nil
}

func (r *assignmentRepository) FindByID(ctx context.Context, id int64) (models.Assignment, error) {
	return r.findOne(ctx, sq.Eq{"asg.id": id})
}

func (r *assignmentRepository) FindByIDAndAssignToUsername(ctx context.Context, id int64, username string) (models.Assignment, error) {
	return r.findOne(ctx, sq.Eq{"asg.id": id, "ut.username": username})
}

func (r *assignmentRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Assignment, error) {
	query, args, err := toSQL(selectAssignments(assignmentColumns...).Where(where))
	if err != nil {
		return models.Assignment{}, err
	}

	assignment, err := scanAssignment(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", "*assignmentRepository.findOne").Msg("failed to scan assignment")
		}
		return models.Assignment{}, notFound(err)
	}

	return assignment, nil
}

func (r *assignmentRepository) specification(filter AssignmentFilter) sq.And {
	var assignedUntil sq.Sqlizer
	if filter.AssignedUntil != nil && !filter.AssignedUntil.IsZero() {
		assignedUntil = sq.LtOrEq{"asg.assigned_date": *filter.AssignedUntil}
	}

	return allOf(
		containsAny(filter.Search, "a.asset_code", "a.name", "ut.username"),
		inIf("asg.state", filter.States),
		dateEqualIf("asg.assigned_date", filter.AssignedDate),
		assignedUntil,
		equalIf("a.location_id", filter.LocationID),
		equalIf("asg.assign_to_id", filter.AssignToID),
		equalIf("asg.asset_id", filter.AssetID),
	)
}

func (r *assignmentRepository) FindAll(ctx context.Context, filter AssignmentFilter, page models.PageRequest) ([]models.Assignment, int64, error) {
	log := logger.FromContext(ctx)
	db := r.db.conn(ctx)
	where := r.specification(filter)

	list, err := orderAndPage(selectAssignments(assignmentColumns...).Where(where), page, assignmentSortColumns, "assetCode", "asg.id")
	if err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, db, selectAssignments("COUNT(*)").Where(where))
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.FindAll").Msg("failed to count assignments")
		return nil, 0, err
	}

	query, args, err := toSQL(list)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.FindAll").Msg("failed to query assignments")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assignments := make([]models.Assignment, 0, page.Limit())
	for rows.Next() {
		assignment, scanErr := scanAssignment(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*assignmentRepository.FindAll").Msg("failed to scan assignment row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assignments, total, nil
}

func (r *assignmentRepository) ExistsByAssetID(ctx context.Context, assetID int64) (bool, error) {
	return exists(ctx, r.db.conn(ctx), psql.Select("1").
		From("assignments").
		Where(sq.Eq{"asset_id": assetID}))
}

func (r *assignmentRepository) ExistsByAssignToIDAndStates(ctx context.Context, userID int64, states []models.AssignmentState) (bool, error) {
	return exists(ctx, r.db.conn(ctx), psql.Select("1").
		From("assignments").
		Where(allOf(sq.Eq{"assign_to_id": userID}, inIf("state", states))))
}

func (r *assignmentRepository) Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	query, args, err := toSQL(psql.Update("assignments").
		Set("asset_id", assignment.Asset.ID).
		Set("assign_to_id", assignment.AssignTo.ID).
		Set("assign_by_id", assignment.AssignBy.ID).
		Set("assigned_date", assignment.AssignedDate).
		Set("note", assignment.Note).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": assignment.ID, "version": assignment.Version}).
		Suffix("RETURNING version, updated_at"))
	if err != nil {
		return models.Assignment{}, err
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&assignment.Version, &assignment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Assignment{}, ErrVersionConflict
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Assignment{}, ErrReferenceViolation
		}
		logger.FromContext(ctx).Err(err).Str("func", "*assignmentRepository.Update").Int64("assignment_id", assignment.ID).Msg("failed to update assignment")
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return assignment, nil
}

func (r *assignmentRepository) UpdateState(ctx context.Context, id, version int64, state models.AssignmentState) error {
	err := execOne(ctx, r.db.conn(ctx), psql.Update("assignments").
		Set("state", state).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "version": version}))
	if errors.Is(err, ErrNotFound) {
		return ErrVersionConflict
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*assignmentRepository.UpdateState").
			Int64("assignment_id", id).
			Str("state", string(state)).
			Msg("failed to update assignment state")
	}

	return err
}

func (r *assignmentRepository) Delete(ctx context.Context, id, version int64) error {
	err := execOne(ctx, r.db.conn(ctx), psql.Delete("assignments").Where(sq.Eq{"id": id, "version": version}))
	if errors.Is(err, ErrNotFound) {
		return ErrVersionConflict
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*assignmentRepository.Delete").Int64("assignment_id", id).Msg("failed to delete assignment")
	}

	return err
}
