package handler

import (
	"fmt"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/handler/http"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	httpHandler, err := http.NewHandler(services, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errHTTPHandlerNotCreated, err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
