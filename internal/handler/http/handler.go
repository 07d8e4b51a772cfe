// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/service"
	"github.com/rs/zerolog"
)

// Handler serves the example and home routes on top of the service layer.
type Handler struct {
	services *service.Services

	// traceIDs generates X-Trace-ID values for requests that arrive without one.
	traceIDs func() string

	// accessLevel is the minimum level an access-log record needs to be emitted.
	accessLevel zerolog.Level

	// development enables CORS and disables static asset serving.
	development bool

	// clientDir is the static asset root served in production.
	clientDir string

	logger *logger.Logger
}

// NewHandler builds a Handler from the services and the structured config.
//
// In production the static asset directory must exist; a missing directory
// is reported as [ErrClientDirNotFound].
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	accessLevel, err := config.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		accessLevel = zerolog.InfoLevel
	}

	h := &Handler{
		services:    services,
		traceIDs:    newTraceID,
		accessLevel: accessLevel,
		development: cfg.IsDevelopment(),
		clientDir:   cfg.Server.ClientDir,
		logger:      logger,
	}

	if !h.development {
		if h.clientDir == "" {
			h.clientDir = config.DefaultClientDir
		}
		info, err := os.Stat(h.clientDir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrClientDirNotFound, h.clientDir)
		}
	}

	logger.Info().Bool("development", h.development).Msg("http handler created")
	return h, nil
}
