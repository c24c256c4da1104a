package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
)

type returningRequestService struct {
	transactor                 store.Transactor
	userRepository             store.UserRepository
	assetRepository            store.AssetRepository
	assignmentRepository       store.AssignmentRepository
	returningRequestRepository store.ReturningRequestRepository

	now    clock
	logger *logger.Logger
}

func NewReturningRequestService(storages *store.Storages, logger *logger.Logger) ReturningRequestService {
	return &returningRequestService{
		transactor:                 storages.Transactor,
		userRepository:             storages.UserRepository,
		assetRepository:            storages.AssetRepository,
		assignmentRepository:       storages.AssignmentRepository,
		returningRequestRepository: storages.ReturningRequestRepository,
		now:                        time.Now,
		logger:                     logger,
	}
}

func (s *returningRequestService) GetAllReturningRequests(ctx context.Context, current models.CurrentUser, search models.ReturningRequestSearch) (models.PaginationResponse[models.ReturningRequestResponse], error) {
	if err := validatePage(search.PageRequest); err != nil {
		return models.PaginationResponse[models.ReturningRequestResponse]{}, err
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.PaginationResponse[models.ReturningRequestResponse]{}, err
	}

	requests, total, err := s.returningRequestRepository.FindAll(ctx, store.ReturningRequestFilter{
		Search:       search.SearchString,
		States:       search.States,
		ReturnedDate: search.ReturnedDate,
		LocationID:   admin.Location.ID,
	}, search.PageRequest)
	if err != nil {
		return models.PaginationResponse[models.ReturningRequestResponse]{}, listError(err)
	}

	return models.NewPaginationResponse(search.PageRequest, total, requests, models.ToReturningRequestResponse), nil
}

// CompleteReturningRequest closes a waiting request: the assignment becomes
// RETURNED and its asset AVAILABLE.
func (s *returningRequestService) CompleteReturningRequest(ctx context.Context, current models.CurrentUser, id int64) error {
	log := logger.FromContext(ctx)

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return err
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		request, err := s.findWaiting(ctx, id, admin.Location.ID)
		if err != nil {
			return err
		}

		request.State = models.ReturningRequestStateCompleted
		request.AcceptedBy = admin
		request.ReturnedDate = s.now.today()

		if err = s.returningRequestRepository.Complete(ctx, request); err != nil {
			return err
		}
		if err = s.assignmentRepository.UpdateState(ctx, request.Assignment.ID, request.Assignment.Version, models.AssignmentStateReturned); err != nil {
			return err
		}
		return s.assetRepository.UpdateState(ctx, request.Assignment.Asset.ID, models.AssetStateAvailable)
	})
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return ErrDataIsOld
		}
		log.Err(err).Str("func", "*returningRequestService.CompleteReturningRequest").Int64("returning_request_id", id).Msg("failed to complete returning request")
		return err
	}

	return nil
}

// CancelReturningRequest deletes a waiting request.
func (s *returningRequestService) CancelReturningRequest(ctx context.Context, current models.CurrentUser, id int64) error {
	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return err
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		request, err := s.findWaiting(ctx, id, admin.Location.ID)
		if err != nil {
			return err
		}

		return s.returningRequestRepository.DeleteByID(ctx, request.ID, request.Version)
	})

	return mapVersionConflict(err)
}

func (s *returningRequestService) findWaiting(ctx context.Context, id, locationID int64) (models.ReturningRequest, error) {
	request, err := s.returningRequestRepository.FindByID(ctx, id)
	if err != nil {
		return models.ReturningRequest{}, mapNotFound(err, ErrReturningRequestNotFound)
	}
	if request.Assignment.Asset.Location.ID != locationID {
		return models.ReturningRequest{}, ErrReturningRequestNotFound
	}
	if request.State != models.ReturningRequestStateWaiting {
		return models.ReturningRequest{}, ErrReturningRequestStateInvalid
	}

	return request, nil
}
