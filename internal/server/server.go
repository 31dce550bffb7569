package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/handler"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger

	// listener overrides the configured address; set by tests.
	listener net.Listener
}

func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPServer
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    background,
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then drains
// the HTTP server and waits for the workers.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) error {
	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	if s.workers != nil {
		s.workers.Run(workersCtx)
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
		serveErr <- s.httpServer.serve(s.listener)
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
		s.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
		// Serve returned on its own: either a bind failure or an explicit Shutdown.
	}

	stopWorkers()
	if s.workers != nil {
		s.workers.Wait()
	}

	if err != nil {
		s.logger.Err(err).Str("func", "*server.run").Msg("HTTP server stopped with error")
		return err
	}
	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
