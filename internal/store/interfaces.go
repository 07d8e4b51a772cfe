//go:generate mockgen -source=interfaces.go -destination=../mock/storage_mock.go -package=mock

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-web-scaffold/models"
)

// UserStorage keeps registered users. Names are unique.
type UserStorage interface {
	// AddUser stores user, or returns ErrUserAlreadyExists if the name is taken.
	AddUser(ctx context.Context, user models.User) error
	// ListUsers returns all users in insertion order. The result is never nil.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// FileStorage persists uploaded files under a caller-chosen name.
// Saving under an existing name replaces the previous content.
type FileStorage interface {
	SaveFile(ctx context.Context, name string, r io.Reader) error
}

// ErrorClassificator maps driver specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
