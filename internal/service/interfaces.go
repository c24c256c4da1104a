// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the asset-management backend.
//
// Services receive the authenticated principal as a [models.CurrentUser],
// open transactions through [store.Transactor] and map entities to the
// response models returned to the transport layer.
package service

import (
	"context"

	"github.com/MKhiriev/asset-management/models"
)

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate parses the token and rejects disabled users.
	Authenticate(ctx context.Context, tokenString string) (models.CurrentUser, error)
	FirstChangePassword(ctx context.Context, current models.CurrentUser, request models.FirstChangePasswordRequest) error
	ChangePassword(ctx context.Context, current models.CurrentUser, request models.ChangePasswordRequest) error
}

type UserService interface {
	CreateUser(ctx context.Context, current models.CurrentUser, request models.UserRequest) (models.UserResponse, error)
	GenerateUsername(ctx context.Context, firstName, lastName string) (string, error)
	GetAllUsers(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error)
	// GetAllUsersForAssignment lists assignable users, the current admin included.
	GetAllUsersForAssignment(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error)
	GetUserByID(ctx context.Context, current models.CurrentUser, id int64) (models.UserResponse, error)
	EditUser(ctx context.Context, current models.CurrentUser, id int64, request models.UserUpdateRequest) (models.UserResponse, error)
	DisableUser(ctx context.Context, current models.CurrentUser, id int64) error
	ExistsCurrentAssignment(ctx context.Context, current models.CurrentUser, id int64) (bool, error)
}

type LocationService interface {
	GetAllLocations(ctx context.Context) ([]models.LocationResponse, error)
}

type CategoryService interface {
	GetAllCategories(ctx context.Context) ([]models.CategoryResponse, error)
	CreateCategory(ctx context.Context, request models.CategoryRequest) (models.CategoryResponse, error)
}

type AssetService interface {
	CreateAsset(ctx context.Context, current models.CurrentUser, request models.AssetRequest) (models.AssetResponse, error)
	GetAllAssets(ctx context.Context, current models.CurrentUser, search models.AssetSearch) (models.PaginationResponse[models.AssetResponse], error)
	GetAsset(ctx context.Context, current models.CurrentUser, id int64) (models.AssetResponse, error)
	GetAssetHistory(ctx context.Context, current models.CurrentUser, id int64, page models.PageRequest) (models.PaginationResponse[models.AssignmentResponse], error)
	EditAsset(ctx context.Context, current models.CurrentUser, id int64, request models.AssetUpdateRequest) (models.AssetResponse, error)
	DeleteAsset(ctx context.Context, current models.CurrentUser, id int64) error
}

type AssignmentService interface {
	CreateAssignment(ctx context.Context, current models.CurrentUser, request models.AssignmentRequest) (models.AssignmentResponse, error)
	EditAssignment(ctx context.Context, current models.CurrentUser, id int64, request models.AssignmentUpdateRequest) (models.AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, current models.CurrentUser, id int64) error
	GetAllAssignments(ctx context.Context, current models.CurrentUser, search models.AssignmentSearch) (models.PaginationResponse[models.AssignmentResponse], error)
	GetAssignment(ctx context.Context, current models.CurrentUser, id int64) (models.AssignmentResponse, error)
	GetMyAssignments(ctx context.Context, current models.CurrentUser, page models.PageRequest) (models.PaginationResponse[models.AssignmentResponse], error)
	RespondAssignment(ctx context.Context, current models.CurrentUser, id int64, reply models.AssignmentReply) (models.AssignmentResponse, error)
	CreateReturningRequest(ctx context.Context, current models.CurrentUser, assignmentID int64) (models.ReturningRequestResponse, error)
}

type ReturningRequestService interface {
	GetAllReturningRequests(ctx context.Context, current models.CurrentUser, search models.ReturningRequestSearch) (models.PaginationResponse[models.ReturningRequestResponse], error)
	CompleteReturningRequest(ctx context.Context, current models.CurrentUser, id int64) error
	CancelReturningRequest(ctx context.Context, current models.CurrentUser, id int64) error
}

type ReportService interface {
	GetReport(ctx context.Context, current models.CurrentUser, page models.PageRequest) (models.PaginationResponse[models.CategoryReport], error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
