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

var returningRequestColumns = []string{
	"rr.id", "rr.returned_date", "rr.state", "rr.version", "rr.created_at",
	"asg.id", "asg.assigned_date", "asg.state", "asg.version",
	"a.id", "a.asset_code", "a.name", "a.location_id",
	"urq.id", "urq.username",
	"uac.id", "uac.username",
}

var returningRequestSortColumns = sortColumns{
	"assetCode":    "a.asset_code",
	"assetName":    "a.name",
	"requestedBy":  "urq.username",
	"acceptedBy":   "uac.username",
	"assignedDate": "asg.assigned_date",
	"returnedDate": "rr.returned_date",
	"state":        "rr.state",
}

type returningRequestRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReturningRequestRepository(db *DB, logger *logger.Logger) ReturningRequestRepository {
	return &returningRequestRepository{
		db:     db,
		logger: logger,
	}
}

func selectReturningRequests(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("returning_requests rr").
		Join("assignments asg ON asg.id = rr.assignment_id").
		Join("assets a ON a.id = asg.asset_id").
		Join("users urq ON urq.id = rr.requested_by_id").
		LeftJoin("users uac ON uac.id = rr.accepted_by_id")
}

func scanReturningRequest(row rowScanner) (models.ReturningRequest, error) {
	var (
		rr               models.ReturningRequest
		acceptedByID     sql.NullInt64
		acceptedUsername sql.NullString
	)

	err := row.Scan(
		&rr.ID, &rr.ReturnedDate, &rr.State, &rr.Version, &rr.CreatedAt,
		&rr.Assignment.ID, &rr.Assignment.AssignedDate, &rr.Assignment.State, &rr.Assignment.Version,
		&rr.Assignment.Asset.ID, &rr.Assignment.Asset.AssetCode, &rr.Assignment.Asset.Name, &rr.Assignment.Asset.Location.ID,
		&rr.RequestedBy.ID, &rr.RequestedBy.Username,
		&acceptedByID, &acceptedUsername,
	)
	rr.AcceptedBy.ID = acceptedByID.Int64
	rr.AcceptedBy.Username = acceptedUsername.String

	return rr, err
}

func (r *returningRequestRepository) Create(ctx context.Context, request models.ReturningRequest) (models.ReturningRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(psql.Insert("returning_requests").
		Columns("assignment_id", "requested_by_id", "state").
		Values(request.Assignment.ID, request.RequestedBy.ID, request.State).
		Suffix("RETURNING id, version, created_at"))
	if err != nil {
		return models.ReturningRequest{}, err
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).
		Scan(&request.ID, &request.Version, &request.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*returningRequestRepository.Create").
			Int64("assignment_id", request.Assignment.ID).
			Msg("failed to insert returning request")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.ReturningRequest{}, ErrReturningRequestExists
		case pgerrcode.ForeignKeyViolation:
			return models.ReturningRequest{}, ErrReferenceViolation
		default:
			return models.ReturningRequest{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return request, nil
}

func (r *returningRequestRepository) FindByID(ctx context.Context, id int64) (models.ReturningRequest, error) {
	query, args, err := toSQL(selectReturningRequests(returningRequestColumns...).Where(sq.Eq{"rr.id": id}))
	if err != nil {
		return models.ReturningRequest{}, err
	}

	request, err := scanReturningRequest(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", "*returningRequestRepository.FindByID").Msg("failed to scan returning request")
		}
		return models.ReturningRequest{}, notFound(err)
	}

	return request, nil
}

func (r *returningRequestRepository) specification(filter ReturningRequestFilter) sq.And {
	return allOf(
		containsAny(filter.Search, "a.asset_code", "a.name", "urq.username"),
		inIf("rr.state", filter.States),
		dateEqualIf("rr.returned_date", filter.ReturnedDate),
		equalIf("a.location_id", filter.LocationID),
	)
}

func (r *returningRequestRepository) FindAll(ctx context.Context, filter ReturningRequestFilter, page models.PageRequest) ([]models.ReturningRequest, int64, error) {
	log := logger.FromContext(ctx)
	db := r.db.conn(ctx)
	where := r.specification(filter)

	list, err := orderAndPage(selectReturningRequests(returningRequestColumns...).Where(where), page, returningRequestSortColumns, "assetCode", "rr.id")
	if err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, db, selectReturningRequests("COUNT(*)").Where(where))
	if err != nil {
		log.Err(err).Str("func", "*returningRequestRepository.FindAll").Msg("failed to count returning requests")
		return nil, 0, err
	}

	query, args, err := toSQL(list)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*returningRequestRepository.FindAll").Msg("failed to query returning requests")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.ReturningRequest, 0, page.Limit())
	for rows.Next() {
		request, scanErr := scanReturningRequest(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*returningRequestRepository.FindAll").Msg("failed to scan returning request row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, total, nil
}

func (r *returningRequestRepository) ExistsByAssignmentID(ctx context.Context, assignmentID int64) (bool, error) {
	return exists(ctx, r.db.conn(ctx), psql.Select("1").
		From("returning_requests").
		Where(sq.Eq{"assignment_id": assignmentID}))
}

// Complete stores the completion fields if request.Version still matches.
func (r *returningRequestRepository) Complete(ctx context.Context, request models.ReturningRequest) error {
	err := execOne(ctx, r.db.conn(ctx), psql.Update("returning_requests").
		Set("state", request.State).
		Set("accepted_by_id", request.AcceptedBy.ID).
		Set("returned_date", request.ReturnedDate).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": request.ID, "version": request.Version}))
	if errors.Is(err, ErrNotFound) {
		return ErrVersionConflict
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*returningRequestRepository.Complete").
			Int64("returning_request_id", request.ID).
			Msg("failed to complete returning request")
	}

	return err
}

func (r *returningRequestRepository) DeleteByID(ctx context.Context, id, version int64) error {
	err := execOne(ctx, r.db.conn(ctx), psql.Delete("returning_requests").Where(sq.Eq{"id": id, "version": version}))
	if errors.Is(err, ErrNotFound) {
		return ErrVersionConflict
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*returningRequestRepository.DeleteByID").
			Int64("returning_request_id", id).
			Msg("failed to delete returning request")
	}

	return err
}
