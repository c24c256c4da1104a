package service

import (
	"errors"

	"github.com/MKhiriev/asset-management/internal/validators"
)

var (
	ErrWrongCredentials        = errors.New("username or password is incorrect")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrUserDisabled            = errors.New("user is disabled")
	ErrPasswordChanged         = errors.New("password was already changed")
	ErrPasswordSame            = errors.New("new password must differ from the old one")
	ErrWrongPassword           = errors.New("wrong password")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidPageable       = errors.New("invalid page request")
	ErrDataIsOld             = errors.New("data is old, reload and try again")
	ErrForbidden             = errors.New("operation is not allowed")
)

// User rules. The join date and admin location errors are the validator's,
// so errors.Is matches them on both layers.
var (
	ErrUserNotFound                  = errors.New("user not found")
	ErrUserStillOwnsValidAssignments = errors.New("user still owns valid assignments")
	ErrLocationNotFound              = errors.New("location not found")
	ErrNameHasNoLetters              = errors.New("first and last name must contain letters")
	ErrJoinDateBeforeDOB             = validators.ErrJoinDateBeforeDOB
	ErrJoinDateWeekend               = validators.ErrJoinDateWeekend
	ErrAdminNullLocation             = validators.ErrAdminNullLocation
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
	ErrCategoryCodeExists = errors.New("category prefix already exists")

	ErrAssetNotFound     = errors.New("asset not found")
	ErrAssetNotEditable  = errors.New("asset is assigned and cannot be changed")
	ErrAssetHasHistory   = errors.New("asset belongs to historical assignments")
	ErrAssetNotAvailable = errors.New("asset is not available")
	ErrAssetStateInvalid = errors.New("asset state is not allowed")

	ErrAssignmentNotFound     = errors.New("assignment not found")
	ErrAssignmentStateInvalid = errors.New("assignment state does not allow this operation")
	ErrAssignedDateInPast     = errors.New("assigned date is in the past")

	ErrReturningRequestExists       = errors.New("returning request already exists")
	ErrReturningRequestNotFound     = errors.New("returning request not found")
	ErrReturningRequestStateInvalid = errors.New("returning request state does not allow this operation")
)
