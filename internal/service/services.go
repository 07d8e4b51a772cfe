package service

import (
	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/store"
)

type Services struct {
	UserService    UserService
	FileService    FileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:    NewUserService(storages.UserStorage, logger),
		FileService:    NewFileService(storages.FileStorage, logger),
		AppInfoService: appInfoService,
	}, nil
}
