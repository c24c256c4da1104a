// Package cache keeps short-lived copies of user account statuses so that
// the authentication middleware does not hit the database on every request.
//
// Entries live under the "userDisable" namespace and are evicted when an
// administrator disables the account or changes its role.
package cache

//go:generate mockgen -source=interfaces.go -destination=../mock/cache_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/asset-management/models"
)

// UserStatusCache stores the status and role of user accounts keyed by
// user ID.
type UserStatusCache interface {
	// Get returns the cached entry. The boolean is false on a miss.
	Get(ctx context.Context, userID int64) (models.UserAccess, bool, error)
	Set(ctx context.Context, userID int64, access models.UserAccess) error
	Evict(ctx context.Context, userID int64) error
}
