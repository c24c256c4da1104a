package service

import (
	"context"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
)

type reportService struct {
	userRepository   store.UserRepository
	reportRepository store.ReportRepository
	logger           *logger.Logger
}

func NewReportService(userRepository store.UserRepository, reportRepository store.ReportRepository, logger *logger.Logger) ReportService {
	return &reportService{
		userRepository:   userRepository,
		reportRepository: reportRepository,
		logger:           logger,
	}
}

// GetReport counts the assets of every category by state within the
// admin's location.
func (s *reportService) GetReport(ctx context.Context, current models.CurrentUser, page models.PageRequest) (models.PaginationResponse[models.CategoryReport], error) {
	if err := validatePage(page); err != nil {
		return models.PaginationResponse[models.CategoryReport]{}, err
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.PaginationResponse[models.CategoryReport]{}, err
	}

	rows, total, err := s.reportRepository.CategoryReport(ctx, admin.Location.ID, page)
	if err != nil {
		return models.PaginationResponse[models.CategoryReport]{}, listError(err)
	}

	return models.NewPaginationResponse(page, total, rows, func(r models.CategoryReport) models.CategoryReport { return r }), nil
}
