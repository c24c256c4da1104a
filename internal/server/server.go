package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/handler"
	"github.com/MKhiriev/asset-management/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is cancelled or the listener fails.
func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.serve()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%w: %w", errServerFailed, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	if err := <-errCh; err != nil {
		return fmt.Errorf("%w: %w", errServerFailed, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
