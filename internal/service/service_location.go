package service

import (
	"context"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
)

type locationService struct {
	locationRepository store.LocationRepository
	logger             *logger.Logger
}

func NewLocationService(locationRepository store.LocationRepository, logger *logger.Logger) LocationService {
	return &locationService{locationRepository: locationRepository, logger: logger}
}

func (s *locationService) GetAllLocations(ctx context.Context) ([]models.LocationResponse, error) {
	locations, err := s.locationRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.LocationResponse, 0, len(locations))
	for _, location := range locations {
		result = append(result, models.ToLocationResponse(location))
	}

	return result, nil
}
