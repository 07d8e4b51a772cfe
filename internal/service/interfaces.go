package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-web-scaffold/models"
)

type UserService interface {
	AddUser(ctx context.Context, user models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

type FileService interface {
	// SaveTextFile stores the upload under name, replacing a previous upload
	// with the same name.
	SaveTextFile(ctx context.Context, name string, r io.Reader) error
	// HandleTextFile reads the whole upload into memory and discards it,
	// returning the number of bytes read.
	HandleTextFile(ctx context.Context, name string, r io.Reader) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
