package handler

import (
	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/handler/http"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/metrics"
	"github.com/MKhiriev/asset-management/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, registry *metrics.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, registry, logger),
	}, nil
}
