package cache

import (
	"context"

	"github.com/MKhiriev/asset-management/models"
)

// noopUserStatusCache is used when no redis address is configured.
// Every lookup is a miss.
type noopUserStatusCache struct{}

func NewNoopUserStatusCache() UserStatusCache {
	return noopUserStatusCache{}
}

func (noopUserStatusCache) Get(context.Context, int64) (models.UserAccess, bool, error) {
	return models.UserAccess{}, false, nil
}

func (noopUserStatusCache) Set(context.Context, int64, models.UserAccess) error {
	return nil
}

func (noopUserStatusCache) Evict(context.Context, int64) error {
	return nil
}
