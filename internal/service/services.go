package service

import (
	"github.com/MKhiriev/asset-management/internal/cache"
	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
)

type Services struct {
	AuthService             AuthService
	UserService             UserService
	LocationService         LocationService
	CategoryService         CategoryService
	AssetService            AssetService
	AssignmentService       AssignmentService
	ReturningRequestService ReturningRequestService
	ReportService           ReportService
	AppInfoService          AppInfoService
}

func NewServices(storages *store.Storages, statusCache cache.UserStatusCache, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:             NewAuthService(storages.UserRepository, statusCache, cfg.App, logger),
		UserService:             NewUserValidationService().Wrap(NewUserService(storages, statusCache, cfg.App, logger)),
		LocationService:         NewLocationService(storages.LocationRepository, logger),
		CategoryService:         NewCategoryService(storages.CategoryRepository, logger),
		AssetService:            NewAssetService(storages, logger),
		AssignmentService:       NewAssignmentService(storages, logger),
		ReturningRequestService: NewReturningRequestService(storages, logger),
		ReportService:           NewReportService(storages.UserRepository, storages.ReportRepository, logger),
		AppInfoService:          appInfoService,
	}, nil
}
