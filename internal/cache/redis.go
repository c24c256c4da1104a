package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/models"
	"github.com/redis/go-redis/v9"
)

// UserDisableCacheName is the namespace of user status entries.
const UserDisableCacheName = "userDisable"

type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisUserStatusCache struct {
	store cmdable
	ttl   time.Duration
}

// NewRedisClient opens a redis connection and verifies it with PING.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingCache, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

func NewUserStatusCache(store cmdable, ttl time.Duration) UserStatusCache {
	return &redisUserStatusCache{
		store: store,
		ttl:   ttl,
	}
}

func userKey(userID int64) string {
	return UserDisableCacheName + "::" + strconv.FormatInt(userID, 10)
}

// entries are stored as "STATUS:ROLE"
func encodeAccess(access models.UserAccess) string {
	return string(access.Status) + ":" + string(access.Role)
}

func decodeAccess(value string) (models.UserAccess, bool) {
	status, role, ok := strings.Cut(value, ":")
	if !ok || status == "" || role == "" {
		return models.UserAccess{}, false
	}
	return models.UserAccess{Status: models.UserStatus(status), Role: models.Role(role)}, true
}

// Get reports a miss for entries it cannot decode.
func (c *redisUserStatusCache) Get(ctx context.Context, userID int64) (models.UserAccess, bool, error) {
	value, err := c.store.Get(ctx, userKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return models.UserAccess{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisUserStatusCache.Get").Int64("user_id", userID).Msg("failed to read user status")
		return models.UserAccess{}, false, fmt.Errorf("%w: %w", ErrReadingCache, err)
	}

	access, ok := decodeAccess(value)
	return access, ok, nil
}

func (c *redisUserStatusCache) Set(ctx context.Context, userID int64, access models.UserAccess) error {
	if err := c.store.Set(ctx, userKey(userID), encodeAccess(access), c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisUserStatusCache.Set").Int64("user_id", userID).Msg("failed to write user status")
		return fmt.Errorf("%w: %w", ErrWritingCache, err)
	}
	return nil
}

func (c *redisUserStatusCache) Evict(ctx context.Context, userID int64) error {
	if err := c.store.Del(ctx, userKey(userID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisUserStatusCache.Evict").Int64("user_id", userID).Msg("failed to evict user status")
		return fmt.Errorf("%w: %w", ErrWritingCache, err)
	}
	return nil
}
