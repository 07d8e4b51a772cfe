package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-web-scaffold/models"
)

// Field name constants used to restrict validation of a user to a subset of
// its fields.
const (
	// FieldName targets the unique user name.
	FieldName = "name"
)

// UserValidator implements the Validator interface for models.User.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User and *models.User. Without fields every known
// field is checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, _ models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			// any string is a name, the empty one included; uniqueness is
			// enforced by the storage
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
