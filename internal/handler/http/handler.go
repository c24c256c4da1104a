package http

import (
	"time"

	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/metrics"
	"github.com/MKhiriev/asset-management/internal/service"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *metrics.Registry
	traceIDs  *utils.UUIDGenerator

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the REST handler. registry may be nil, in which case
// no request metrics are recorded and /metrics is not served.
func NewHandler(services *service.Services, cfg config.Server, registry *metrics.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		metrics:        registry,
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger.GetChildLogger(),
	}
}
