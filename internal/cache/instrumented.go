package cache

import (
	"context"

	"github.com/MKhiriev/asset-management/models"
)

// Recorder counts cache lookups and evictions.
type Recorder interface {
	CacheHit(cache string)
	CacheMiss(cache string)
	CacheEviction(cache string)
}

type instrumentedUserStatusCache struct {
	UserStatusCache
	recorder Recorder
}

// WithMetrics reports every Get and successful Evict of inner to recorder.
func WithMetrics(inner UserStatusCache, recorder Recorder) UserStatusCache {
	return &instrumentedUserStatusCache{
		UserStatusCache: inner,
		recorder:        recorder,
	}
}

func (c *instrumentedUserStatusCache) Get(ctx context.Context, userID int64) (models.UserAccess, bool, error) {
	access, found, err := c.UserStatusCache.Get(ctx, userID)
	if err == nil {
		if found {
			c.recorder.CacheHit(UserDisableCacheName)
		} else {
			c.recorder.CacheMiss(UserDisableCacheName)
		}
	}
	return access, found, err
}

func (c *instrumentedUserStatusCache) Evict(ctx context.Context, userID int64) error {
	err := c.UserStatusCache.Evict(ctx, userID)
	if err == nil {
		c.recorder.CacheEviction(UserDisableCacheName)
	}
	return err
}
