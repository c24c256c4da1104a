package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/asset-management/models"
)

// Transactor runs a function inside a database transaction. Repositories
// invoked with the context passed to fn share the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserFilter narrows a user listing. Disabled users are never listed.
type UserFilter struct {
	Search        string
	Role          models.Role
	LocationID    int64
	ExcludeUserID int64
}

type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	UpdateStaffCode(ctx context.Context, id int64, staffCode string) error
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindUsernamesByPrefix(ctx context.Context, prefix string) ([]string, error)
	FindAll(ctx context.Context, filter UserFilter, page models.PageRequest) ([]models.User, int64, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error
	UpdatePassword(ctx context.Context, id int64, hashPassword string, status models.UserStatus) error
}

type LocationRepository interface {
	FindAll(ctx context.Context) ([]models.Location, error)
	FindByID(ctx context.Context, id int64) (models.Location, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category models.Category) (models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id int64) (models.Category, error)
	FindByName(ctx context.Context, name string) (models.Category, error)
	FindByCode(ctx context.Context, code string) (models.Category, error)
	// NextAssetSequence increments the category's asset counter and returns
	// the category with the new value. The category row stays locked until
	// the surrounding transaction ends.
	NextAssetSequence(ctx context.Context, categoryID int64) (models.Category, int64, error)
}

// AssetFilter narrows an asset listing.
type AssetFilter struct {
	Search      string
	States      []models.AssetState
	CategoryIDs []int64
	LocationID  int64
}

type AssetRepository interface {
	Create(ctx context.Context, asset models.Asset) (models.Asset, error)
	FindByID(ctx context.Context, id int64) (models.Asset, error)
	FindByIDForUpdate(ctx context.Context, id int64) (models.Asset, error)
	FindAll(ctx context.Context, filter AssetFilter, page models.PageRequest) ([]models.Asset, int64, error)
	Update(ctx context.Context, asset models.Asset) (models.Asset, error)
	UpdateState(ctx context.Context, id int64, state models.AssetState) error
	Delete(ctx context.Context, id int64) error
}

// AssignmentFilter narrows an assignment listing. Zero values are ignored.
type AssignmentFilter struct {
	Search       string
	States       []models.AssignmentState
	AssignedDate *models.Date
	// AssignedUntil keeps assignments whose assigned date is on or before it.
	AssignedUntil *models.Date
	LocationID    int64
	AssignToID    int64
	AssetID       int64
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	FindByID(ctx context.Context, id int64) (models.Assignment, error)
	FindByIDAndAssignToUsername(ctx context.Context, id int64, username string) (models.Assignment, error)
	FindAll(ctx context.Context, filter AssignmentFilter, page models.PageRequest) ([]models.Assignment, int64, error)
	ExistsByAssetID(ctx context.Context, assetID int64) (bool, error)
	ExistsByAssignToIDAndStates(ctx context.Context, userID int64, states []models.AssignmentState) (bool, error)
	Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	// UpdateState and Delete only touch the row while its version equals
	// version and return ErrVersionConflict otherwise.
	UpdateState(ctx context.Context, id, version int64, state models.AssignmentState) error
	Delete(ctx context.Context, id, version int64) error
}

// ReturningRequestFilter narrows a returning request listing.
type ReturningRequestFilter struct {
	Search       string
	States       []models.ReturningRequestState
	ReturnedDate *models.Date
	LocationID   int64
}

type ReturningRequestRepository interface {
	Create(ctx context.Context, request models.ReturningRequest) (models.ReturningRequest, error)
	FindByID(ctx context.Context, id int64) (models.ReturningRequest, error)
	FindAll(ctx context.Context, filter ReturningRequestFilter, page models.PageRequest) ([]models.ReturningRequest, int64, error)
	ExistsByAssignmentID(ctx context.Context, assignmentID int64) (bool, error)
	Complete(ctx context.Context, request models.ReturningRequest) error
	DeleteByID(ctx context.Context, id, version int64) error
}

type ReportRepository interface {
	CategoryReport(ctx context.Context, locationID int64, page models.PageRequest) ([]models.CategoryReport, int64, error)
}
