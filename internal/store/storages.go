// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
)

// Storages groups the storage backends handed to the service layer.
type Storages struct {
	UserStorage UserStorage
	FileStorage FileStorage

	db *DB
}

// NewStorages builds the backends selected by cfg:
//   - an empty DSN keeps users in memory, "postgres://" and "postgresql://"
//     use PostgreSQL and "sqlite://" or "file:" use SQLite. SQL schemas are
//     migrated before NewStorages returns;
//   - the "local" (default) file backend writes into cfg.Files.Dir, "minio"
//     uploads to the configured bucket.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	storages := new(Storages)

	userStorage, db, err := newUserStorage(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}
	storages.UserStorage = userStorage
	storages.db = db

	fileStorage, err := newFileStorage(ctx, cfg.Files, logger)
	if err != nil {
		storages.Close()
		return nil, err
	}
	storages.FileStorage = fileStorage

	return storages, nil
}

func newUserStorage(ctx context.Context, cfg config.DB, logger *logger.Logger) (UserStorage, *DB, error) {
	var (
		db  *DB
		err error
	)

	switch dsn := strings.TrimSpace(cfg.DSN); {
	case dsn == "":
		logger.Info().Msg("using in-memory user storage")
		return NewMemoryUserStorage(), nil, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, config.DB{DSN: dsn}, logger)
	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, sqliteFileURI):
		db, err = NewConnectSQLite(ctx, dsn, logger)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
	if err != nil {
		return nil, nil, err
	}

	if err = db.Migrate(); err != nil {
		logger.Err(err).Str("func", "store.newUserStorage").Msg("error applying migrations")
		db.Close()
		return nil, nil, err
	}

	return NewUserRepository(db, logger), db, nil
}

func newFileStorage(ctx context.Context, cfg config.Files, logger *logger.Logger) (FileStorage, error) {
	switch cfg.Backend {
	case "", config.FileBackendLocal:
		dir := cfg.Dir
		if dir == "" {
			dir = config.DefaultUploadDir
		}
		return NewLocalFileStorage(dir, logger)
	case config.FileBackendMinio:
		return NewMinioFileStorage(ctx, cfg.Minio, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileBackend, cfg.Backend)
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// redactDSN drops everything after the scheme so credentials never reach
// logs or error messages.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://..."
	}
	return "..."
}
