package service

import (
	"context"

	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService prefers the configured version and falls back to the
// version linked into the binary.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" || version == "N/A" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: models.VersionResponse{
			Version:     version,
			BuildDate:   buildInfo.BuildDate(),
			BuildCommit: buildInfo.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
