package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/asset-management/internal/validators"
	"github.com/MKhiriev/asset-management/models"
)

// UserValidationService applies the cross-field user rules before
// delegating to the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, current models.CurrentUser, request models.UserRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.UserResponse{}, fmt.Errorf("error during user validation before saving: %w", err)
	}

	return v.inner.CreateUser(ctx, current, request)
}

func (v *UserValidationService) GenerateUsername(ctx context.Context, firstName, lastName string) (string, error) {
	return v.inner.GenerateUsername(ctx, firstName, lastName)
}

func (v *UserValidationService) GetAllUsers(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error) {
	return v.inner.GetAllUsers(ctx, current, search)
}

func (v *UserValidationService) GetAllUsersForAssignment(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error) {
	return v.inner.GetAllUsersForAssignment(ctx, current, search)
}

func (v *UserValidationService) GetUserByID(ctx context.Context, current models.CurrentUser, id int64) (models.UserResponse, error) {
	return v.inner.GetUserByID(ctx, current, id)
}

func (v *UserValidationService) EditUser(ctx context.Context, current models.CurrentUser, id int64, request models.UserUpdateRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.UserResponse{}, fmt.Errorf("error during user validation before update: %w", err)
	}

	return v.inner.EditUser(ctx, current, id, request)
}

func (v *UserValidationService) DisableUser(ctx context.Context, current models.CurrentUser, id int64) error {
	return v.inner.DisableUser(ctx, current, id)
}

func (v *UserValidationService) ExistsCurrentAssignment(ctx context.Context, current models.CurrentUser, id int64) (bool, error) {
	return v.inner.ExistsCurrentAssignment(ctx, current, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
