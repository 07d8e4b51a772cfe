package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
)

// chunkSize is the size of a single write to disk.
const chunkSize = 1024

// localFileStorage writes uploads into a directory on the local filesystem.
type localFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalFileStorage returns a [FileStorage] rooted at dir. The directory is
// created if it does not exist.
func NewLocalFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory %q: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating local file storage")
	return &localFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// SaveFile copies r into <dir>/<name> chunk by chunk, replacing any existing
// file. ctx is checked before every chunk. A failed copy removes the partial
// file.
func (s *localFileStorage) SaveFile(ctx context.Context, name string, r io.Reader) (err error) {
	log := logger.FromContext(ctx)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "*localFileStorage.SaveFile").Str("path", path).Msg("error creating file")
		return fmt.Errorf("error creating file %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("error closing file %q: %w", name, closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	buf := make([]byte, chunkSize)
	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		n, readErr := r.Read(buf)
		if n > 0 {
			if _, err = f.Write(buf[:n]); err != nil {
				log.Err(err).Str("func", "*localFileStorage.SaveFile").Str("path", path).Msg("error writing chunk")
				return fmt.Errorf("error writing file %q: %w", name, err)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			log.Err(readErr).Str("func", "*localFileStorage.SaveFile").Msg("error reading upload")
			return fmt.Errorf("error reading upload %q: %w", name, readErr)
		}
	}
}
