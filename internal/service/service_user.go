package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/store"
	"github.com/MKhiriev/go-web-scaffold/internal/validators"
	"github.com/MKhiriev/go-web-scaffold/models"
)

type userService struct {
	storage   store.UserStorage
	validator validators.Validator

	logger *logger.Logger
}

func NewUserService(storage store.UserStorage, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		storage:   storage,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

// AddUser validates user and stores it. A taken name is reported as
// [store.ErrUserAlreadyExists].
func (s *userService) AddUser(ctx context.Context, user models.User) error {
	if err := s.validator.Validate(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.storage.AddUser(ctx, user); err != nil {
		return fmt.Errorf("error adding user: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("user", user.Name).Msg("user added")
	return nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}
