package handler

import (
	"testing"

	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/metrics"
	"github.com/MKhiriev/asset-management/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, cfg, metrics.NewRegistry(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, nil, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
