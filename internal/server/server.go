package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer binds host:port from cfg and prepares handler for serving.
// Binding happens here so an occupied or invalid address is reported before
// RunServer is called.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNilHandler
	}

	httpSrv, err := newHTTPServer(handler, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or serving fails, then shuts the server down.
func (s *server) run(ctx context.Context) error {
	s.logger.Debug().Msg("before server start")
	s.logger.Info().Str("address", s.Addr()).Msg("launching HTTP server")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case err := <-serveErr:
		s.Shutdown()
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err := <-serveErr

	s.logger.Info().Msg("server Shutdown gracefully")
	s.logger.Debug().Msg("after server stop")
	return err
}
