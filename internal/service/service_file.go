package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/store"
	"github.com/MKhiriev/go-web-scaffold/internal/validators"
)

type fileService struct {
	storage   store.FileStorage
	validator validators.Validator

	logger *logger.Logger
}

func NewFileService(storage store.FileStorage, logger *logger.Logger) FileService {
	logger.Debug().Msg("creating file service")
	return &fileService{
		storage:   storage,
		validator: validators.NewFileNameValidator(),
		logger:    logger,
	}
}

func (s *fileService) SaveTextFile(ctx context.Context, name string, r io.Reader) error {
	if err := s.validator.Validate(ctx, name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFileName, err)
	}

	if err := s.storage.SaveFile(ctx, name, r); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}

	return nil
}

func (s *fileService) HandleTextFile(ctx context.Context, name string, r io.Reader) (int64, error) {
	var buf bytes.Buffer
	n, err := buf.ReadFrom(r)
	if err != nil {
		return n, fmt.Errorf("error reading file: %w", err)
	}

	logger.FromContext(ctx).Info().Msgf("Handling txt file: %s", name)

	return n, nil
}
