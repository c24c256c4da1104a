package cache

import (
	"context"
	"io"

	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the user status cache described by cfg. The returned closer
// releases the redis connection.
func New(ctx context.Context, cfg config.Cache, log *logger.Logger) (UserStatusCache, io.Closer, error) {
	if cfg.Address == "" {
		log.Info().Str("func", "cache.New").Msg("cache address is empty, user statuses are read from the database")
		return NewNoopUserStatusCache(), nopCloser{}, nil
	}

	client, err := NewRedisClient(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return NewUserStatusCache(client, cfg.TTL), client, nil
}
