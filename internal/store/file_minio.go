package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const textContentType = "text/plain"

// minioFileStorage streams uploads into an S3 compatible bucket.
type minioFileStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinioFileStorage connects to the configured endpoint and checks that the
// bucket exists.
func NewMinioFileStorage(ctx context.Context, cfg config.Minio, logger *logger.Logger) (FileStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, ErrIncompleteMinioConfig
	}

	endpoint, secure, err := normaliseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid minio endpoint: %w", err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	// bucket must exist
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking minio bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, cfg.Bucket)
	}

	logger.Debug().Str("endpoint", endpoint).Str("bucket", cfg.Bucket).Msg("creating minio file storage")
	return &minioFileStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// SaveFile uploads r as object name. The size is unknown up front, so the
// client switches to a multipart upload for large bodies.
func (s *minioFileStorage) SaveFile(ctx context.Context, name string, r io.Reader) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, r, -1, minio.PutObjectOptions{ContentType: textContentType})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioFileStorage.SaveFile").Str("object", name).Msg("error uploading object")
		return fmt.Errorf("error uploading %q: %w", name, err)
	}

	return nil
}

// normaliseEndpoint accepts either "minio:9000" or a URL such as
// "https://minio:9000" and returns the host:port plus whether TLS is used.
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, errors.New("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, errors.New("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, errors.New("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	// host:port, plain http for local MinIO
	return raw, false, nil
}
