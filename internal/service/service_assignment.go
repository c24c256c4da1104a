package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
)

type assignmentService struct {
	transactor                 store.Transactor
	userRepository             store.UserRepository
	assetRepository            store.AssetRepository
	assignmentRepository       store.AssignmentRepository
	returningRequestRepository store.ReturningRequestRepository

	now    clock
	logger *logger.Logger
}

func NewAssignmentService(storages *store.Storages, logger *logger.Logger) AssignmentService {
	return &assignmentService{
		transactor:                 storages.Transactor,
		userRepository:             storages.UserRepository,
		assetRepository:            storages.AssetRepository,
		assignmentRepository:       storages.AssignmentRepository,
		returningRequestRepository: storages.ReturningRequestRepository,
		now:                        time.Now,
		logger:                     logger,
	}
}

// CreateAssignment assigns an available asset of the admin's location to an
// enabled user of the same location and marks the asset ASSIGNED.
func (s *assignmentService) CreateAssignment(ctx context.Context, current models.CurrentUser, request models.AssignmentRequest) (models.AssignmentResponse, error) {
	log := logger.FromContext(ctx)

	if request.AssignedDate.Before(s.now.today()) {
		return models.AssignmentResponse{}, ErrAssignedDateInPast
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.AssignmentResponse{}, err
	}

	var assignment models.Assignment
	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		asset, err := s.availableAsset(ctx, request.AssetID, admin.Location.ID)
		if err != nil {
			return err
		}

		assignee, err := s.assignee(ctx, request.UserID, admin.Location.ID)
		if err != nil {
			return err
		}

		assignment, err = s.assignmentRepository.Create(ctx, models.Assignment{
			Asset:        asset,
			AssignTo:     assignee,
			AssignBy:     admin,
			AssignedDate: request.AssignedDate,
			Note:         request.Note,
			State:        models.AssignmentStateWaiting,
		})
		if err != nil {
			return err
		}

		assignment.Asset.State = models.AssetStateAssigned
		return s.assetRepository.UpdateState(ctx, asset.ID, models.AssetStateAssigned)
	})
	if err != nil {
		log.Err(err).Str("func", "*assignmentService.CreateAssignment").Int64("asset_id", request.AssetID).Msg("failed to create assignment")
		return models.AssignmentResponse{}, err
	}

	return models.ToAssignmentResponse(assignment), nil
}

// EditAssignment changes a WAITING assignment. Swapping the asset frees the
// old one and reserves the new one.
func (s *assignmentService) EditAssignment(ctx context.Context, current models.CurrentUser, id int64, request models.AssignmentUpdateRequest) (models.AssignmentResponse, error) {
	if request.AssignedDate.Before(s.now.today()) {
		return models.AssignmentResponse{}, ErrAssignedDateInPast
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.AssignmentResponse{}, err
	}

	var assignment models.Assignment
	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		assignment, err = s.findInLocation(ctx, id, admin.Location.ID)
		if err != nil {
			return err
		}
		if assignment.State != models.AssignmentStateWaiting {
			return ErrAssignmentStateInvalid
		}
		if request.Version == nil || *request.Version != assignment.Version {
			return ErrDataIsOld
		}

		if request.AssetID != assignment.Asset.ID {
			asset, err := s.availableAsset(ctx, request.AssetID, admin.Location.ID)
			if err != nil {
				return err
			}
			if err = s.assetRepository.UpdateState(ctx, assignment.Asset.ID, models.AssetStateAvailable); err != nil {
				return err
			}
			if err = s.assetRepository.UpdateState(ctx, asset.ID, models.AssetStateAssigned); err != nil {
				return err
			}
			asset.State = models.AssetStateAssigned
			assignment.Asset = asset
		}

		if request.UserID != assignment.AssignTo.ID {
			assignee, err := s.assignee(ctx, request.UserID, admin.Location.ID)
			if err != nil {
				return err
			}
			assignment.AssignTo = assignee
		}

		assignment.AssignBy = admin
		assignment.AssignedDate = request.AssignedDate
		assignment.Note = request.Note

		assignment, err = s.assignmentRepository.Update(ctx, assignment)
		return err
	})
	if err != nil {
		return models.AssignmentResponse{}, mapVersionConflict(err)
	}

	return models.ToAssignmentResponse(assignment), nil
}

// DeleteAssignment removes a WAITING or DECLINED assignment. Deleting a
// waiting one makes its asset available again.
func (s *assignmentService) DeleteAssignment(ctx context.Context, current models.CurrentUser, id int64) error {
	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return err
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		assignment, err := s.findInLocation(ctx, id, admin.Location.ID)
		if err != nil {
			return err
		}
		if assignment.State != models.AssignmentStateWaiting && assignment.State != models.AssignmentStateDeclined {
			return ErrAssignmentStateInvalid
		}

		if err = s.assignmentRepository.Delete(ctx, assignment.ID, assignment.Version); err != nil {
			return err
		}

		if assignment.State == models.AssignmentStateWaiting {
			return s.assetRepository.UpdateState(ctx, assignment.Asset.ID, models.AssetStateAvailable)
		}
		return nil
	})

	return mapVersionConflict(err)
}

func (s *assignmentService) GetAllAssignments(ctx context.Context, current models.CurrentUser, search models.AssignmentSearch) (models.PaginationResponse[models.AssignmentResponse], error) {
	if err := validatePage(search.PageRequest); err != nil {
		return models.PaginationResponse[models.AssignmentResponse]{}, err
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.PaginationResponse[models.AssignmentResponse]{}, err
	}

	states := search.States
	if len(states) == 0 {
		states = models.DefaultAssignmentSearchStates
	}

	assignments, total, err := s.assignmentRepository.FindAll(ctx, store.AssignmentFilter{
		Search:       search.SearchString,
		States:       states,
		AssignedDate: search.AssignedDate,
		LocationID:   admin.Location.ID,
	}, search.PageRequest)
	if err != nil {
		return models.PaginationResponse[models.AssignmentResponse]{}, listError(err)
	}

	return models.NewPaginationResponse(search.PageRequest, total, assignments, models.ToAssignmentResponse), nil
}

// GetAssignment returns an assignment of the admin's location, or one of the
// caller's own assignments for the USER role.
func (s *assignmentService) GetAssignment(ctx context.Context, current models.CurrentUser, id int64) (models.AssignmentResponse, error) {
	if current.Role != models.RoleAdmin {
		assignment, err := s.assignmentRepository.FindByIDAndAssignToUsername(ctx, id, current.Username)
		if err != nil {
			return models.AssignmentResponse{}, mapNotFound(err, ErrAssignmentNotFound)
		}
		return models.ToAssignmentResponse(assignment), nil
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.AssignmentResponse{}, err
	}

	assignment, err := s.findInLocation(ctx, id, admin.Location.ID)
	if err != nil {
		return models.AssignmentResponse{}, err
	}

	return models.ToAssignmentResponse(assignment), nil
}

// GetMyAssignments lists the caller's waiting and accepted assignments that
// have started.
func (s *assignmentService) GetMyAssignments(ctx context.Context, current models.CurrentUser, page models.PageRequest) (models.PaginationResponse[models.AssignmentResponse], error) {
	if err := validatePage(page); err != nil {
		return models.PaginationResponse[models.AssignmentResponse]{}, err
	}

	today := s.now.today()
	assignments, total, err := s.assignmentRepository.FindAll(ctx, store.AssignmentFilter{
		States:        models.CurrentAssignmentStates,
		AssignedUntil: &today,
		AssignToID:    current.ID,
	}, page)
	if err != nil {
		return models.PaginationResponse[models.AssignmentResponse]{}, listError(err)
	}

	return models.NewPaginationResponse(page, total, assignments, models.ToAssignmentResponse), nil
}

// RespondAssignment accepts or declines one of the caller's WAITING
// assignments. Declining makes the asset available again.
func (s *assignmentService) RespondAssignment(ctx context.Context, current models.CurrentUser, id int64, reply models.AssignmentReply) (models.AssignmentResponse, error) {
	if reply.Accepted == nil {
		return models.AssignmentResponse{}, fmt.Errorf("%w: missing reply", ErrAssignmentStateInvalid)
	}

	var assignment models.Assignment
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		assignment, err = s.assignmentRepository.FindByIDAndAssignToUsername(ctx, id, current.Username)
		if err != nil {
			return mapNotFound(err, ErrAssignmentNotFound)
		}
		if assignment.State != models.AssignmentStateWaiting {
			return ErrAssignmentStateInvalid
		}

		assignment.State = models.AssignmentStateDeclined
		if *reply.Accepted {
			assignment.State = models.AssignmentStateAccepted
		}
		if err = s.assignmentRepository.UpdateState(ctx, assignment.ID, assignment.Version, assignment.State); err != nil {
			return err
		}
		assignment.Version++

		if assignment.State == models.AssignmentStateDeclined {
			assignment.Asset.State = models.AssetStateAvailable
			return s.assetRepository.UpdateState(ctx, assignment.Asset.ID, models.AssetStateAvailable)
		}
		return nil
	})
	if err != nil {
		return models.AssignmentResponse{}, mapVersionConflict(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*assignmentService.RespondAssignment").
		Int64("assignment_id", assignment.ID).
		Str("state", string(assignment.State)).
		Msg("assignment answered")

	return models.ToAssignmentResponse(assignment), nil
}

// CreateReturningRequest asks to return the asset of an ACCEPTED assignment.
// Users may only ask for their own assignments, admins for any assignment
// of their location.
func (s *assignmentService) CreateReturningRequest(ctx context.Context, current models.CurrentUser, assignmentID int64) (models.ReturningRequestResponse, error) {
	requester, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.ReturningRequestResponse{}, err
	}

	var request models.ReturningRequest
	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		assignment, err := s.assignmentRepository.FindByID(ctx, assignmentID)
		if err != nil {
			return mapNotFound(err, ErrAssignmentNotFound)
		}

		switch requester.Role {
		case models.RoleAdmin:
			if assignment.Asset.Location.ID != requester.Location.ID {
				return ErrAssignmentNotFound
			}
		default:
			if assignment.AssignTo.ID != requester.ID {
				return ErrAssignmentNotFound
			}
		}

		if assignment.State != models.AssignmentStateAccepted {
			return ErrAssignmentStateInvalid
		}

		exists, err := s.returningRequestRepository.ExistsByAssignmentID(ctx, assignment.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrReturningRequestExists
		}

		request, err = s.returningRequestRepository.Create(ctx, models.ReturningRequest{
			Assignment:  assignment,
			RequestedBy: requester,
			State:       models.ReturningRequestStateWaiting,
		})
		if errors.Is(err, store.ErrReturningRequestExists) {
			return ErrReturningRequestExists
		}
		return err
	})
	if err != nil {
		return models.ReturningRequestResponse{}, err
	}

	return models.ToReturningRequestResponse(request), nil
}

func (s *assignmentService) findInLocation(ctx context.Context, id, locationID int64) (models.Assignment, error) {
	assignment, err := s.assignmentRepository.FindByID(ctx, id)
	if err != nil {
		return models.Assignment{}, mapNotFound(err, ErrAssignmentNotFound)
	}
	if assignment.Asset.Location.ID != locationID {
		return models.Assignment{}, ErrAssignmentNotFound
	}

	return assignment, nil
}

// availableAsset locks an AVAILABLE asset of the location.
func (s *assignmentService) availableAsset(ctx context.Context, id, locationID int64) (models.Asset, error) {
	asset, err := s.assetRepository.FindByIDForUpdate(ctx, id)
	if err != nil {
		return models.Asset{}, mapNotFound(err, ErrAssetNotFound)
	}
	if asset.Location.ID != locationID {
		return models.Asset{}, ErrAssetNotFound
	}
	if asset.State != models.AssetStateAvailable {
		return models.Asset{}, ErrAssetNotAvailable
	}

	return asset, nil
}

func (s *assignmentService) assignee(ctx context.Context, id, locationID int64) (models.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, mapNotFound(err, ErrUserNotFound)
	}
	if user.Status == models.UserStatusDisabled || user.Location.ID != locationID {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}
