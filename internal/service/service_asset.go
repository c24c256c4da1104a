package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
)

type assetService struct {
	transactor           store.Transactor
	userRepository       store.UserRepository
	categoryRepository   store.CategoryRepository
	assetRepository      store.AssetRepository
	assignmentRepository store.AssignmentRepository

	logger *logger.Logger
}

func NewAssetService(storages *store.Storages, logger *logger.Logger) AssetService {
	return &assetService{
		transactor:           storages.Transactor,
		userRepository:       storages.UserRepository,
		categoryRepository:   storages.CategoryRepository,
		assetRepository:      storages.AssetRepository,
		assignmentRepository: storages.AssignmentRepository,
		logger:               logger,
	}
}

// CreateAsset stores an asset in the admin's location. The asset code is
// taken from the category counter, which stays locked until commit.
func (s *assetService) CreateAsset(ctx context.Context, current models.CurrentUser, request models.AssetRequest) (models.AssetResponse, error) {
	log := logger.FromContext(ctx)

	if request.State != models.AssetStateAvailable && request.State != models.AssetStateNotAvailable {
		return models.AssetResponse{}, ErrAssetStateInvalid
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.AssetResponse{}, err
	}

	var asset models.Asset
	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		category, seq, err := s.categoryRepository.NextAssetSequence(ctx, request.CategoryID)
		if err != nil {
			return mapNotFound(err, ErrCategoryNotFound)
		}

		asset, err = s.assetRepository.Create(ctx, models.Asset{
			AssetCode:     models.GenerateAssetCode(category.Code, seq),
			Name:          request.Name,
			Specification: request.Specification,
			InstalledDate: request.InstalledDate,
			State:         request.State,
			Category:      category,
			Location:      admin.Location,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return models.AssetResponse{}, err
		}
		log.Err(err).Str("func", "*assetService.CreateAsset").Int64("category_id", request.CategoryID).Msg("failed to create asset")
		return models.AssetResponse{}, fmt.Errorf("asset creation ended with error: %w", err)
	}

	return models.ToAssetResponse(asset), nil
}

func (s *assetService) GetAllAssets(ctx context.Context, current models.CurrentUser, search models.AssetSearch) (models.PaginationResponse[models.AssetResponse], error) {
	if err := validatePage(search.PageRequest); err != nil {
		return models.PaginationResponse[models.AssetResponse]{}, err
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.PaginationResponse[models.AssetResponse]{}, err
	}

	states := search.States
	if len(states) == 0 {
		states = models.DefaultAssetSearchStates
	}

	assets, total, err := s.assetRepository.FindAll(ctx, store.AssetFilter{
		Search:      search.SearchString,
		States:      states,
		CategoryIDs: search.CategoryIDs,
		LocationID:  admin.Location.ID,
	}, search.PageRequest)
	if err != nil {
		return models.PaginationResponse[models.AssetResponse]{}, listError(err)
	}

	return models.NewPaginationResponse(search.PageRequest, total, assets, models.ToAssetResponse), nil
}

func (s *assetService) GetAsset(ctx context.Context, current models.CurrentUser, id int64) (models.AssetResponse, error) {
	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.AssetResponse{}, err
	}

	asset, err := s.findInLocation(ctx, s.assetRepository.FindByID, id, admin.Location.ID)
	if err != nil {
		return models.AssetResponse{}, err
	}

	return models.ToAssetResponse(asset), nil
}

// GetAssetHistory lists every assignment the asset took part in.
func (s *assetService) GetAssetHistory(ctx context.Context, current models.CurrentUser, id int64, page models.PageRequest) (models.PaginationResponse[models.AssignmentResponse], error) {
	if err := validatePage(page); err != nil {
		return models.PaginationResponse[models.AssignmentResponse]{}, err
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.PaginationResponse[models.AssignmentResponse]{}, err
	}

	if _, err = s.findInLocation(ctx, s.assetRepository.FindByID, id, admin.Location.ID); err != nil {
		return models.PaginationResponse[models.AssignmentResponse]{}, err
	}

	if page.OrderBy == "" {
		page.OrderBy = "assignedDate"
		page.SortDir = models.SortDesc
	}

	assignments, total, err := s.assignmentRepository.FindAll(ctx, store.AssignmentFilter{AssetID: id}, page)
	if err != nil {
		return models.PaginationResponse[models.AssignmentResponse]{}, listError(err)
	}

	return models.NewPaginationResponse(page, total, assignments, models.ToAssignmentResponse), nil
}

func (s *assetService) EditAsset(ctx context.Context, current models.CurrentUser, id int64, request models.AssetUpdateRequest) (models.AssetResponse, error) {
	if !request.State.IsValid() || request.State == models.AssetStateAssigned {
		return models.AssetResponse{}, ErrAssetStateInvalid
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.AssetResponse{}, err
	}

	asset, err := s.findInLocation(ctx, s.assetRepository.FindByID, id, admin.Location.ID)
	if err != nil {
		return models.AssetResponse{}, err
	}

	if request.Version == nil || *request.Version != asset.Version {
		return models.AssetResponse{}, ErrDataIsOld
	}
	if asset.State == models.AssetStateAssigned {
		return models.AssetResponse{}, ErrAssetNotEditable
	}

	asset.Name = request.Name
	asset.Specification = request.Specification
	asset.InstalledDate = request.InstalledDate
	asset.State = request.State

	updated, err := s.assetRepository.Update(ctx, asset)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return models.AssetResponse{}, ErrDataIsOld
		}
		return models.AssetResponse{}, err
	}

	return models.ToAssetResponse(updated), nil
}

// DeleteAsset removes an asset that was never assigned.
func (s *assetService) DeleteAsset(ctx context.Context, current models.CurrentUser, id int64) error {
	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return err
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		asset, err := s.findInLocation(ctx, s.assetRepository.FindByIDForUpdate, id, admin.Location.ID)
		if err != nil {
			return err
		}
		if asset.State == models.AssetStateAssigned {
			return ErrAssetNotEditable
		}

		hasHistory, err := s.assignmentRepository.ExistsByAssetID(ctx, asset.ID)
		if err != nil {
			return err
		}
		if hasHistory {
			return ErrAssetHasHistory
		}

		return s.assetRepository.Delete(ctx, asset.ID)
	})

	switch {
	case errors.Is(err, store.ErrReferenceViolation):
		return ErrAssetHasHistory
	case errors.Is(err, store.ErrNotFound):
		return ErrAssetNotFound
	}

	return err
}

func (s *assetService) findInLocation(ctx context.Context, find func(context.Context, int64) (models.Asset, error), id, locationID int64) (models.Asset, error) {
	asset, err := find(ctx, id)
	if err != nil {
		return models.Asset{}, mapNotFound(err, ErrAssetNotFound)
	}
	if asset.Location.ID != locationID {
		return models.Asset{}, ErrAssetNotFound
	}

	return asset, nil
}
