// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

const maxPort = 65535

var supportedEncodings = map[string]struct{}{
	"utf-8": {},
	"utf8":  {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// joining every violation otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if err := cfg.Server.validate(); err != nil {
		errs = append(errs, err)
	}

	if cfg.Logger != nil {
		if err := cfg.Logger.validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := cfg.Storage.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s Server) validate() error {
	if strings.TrimSpace(s.Host) == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidServerConfigs)
	}

	if s.Port < 1 || s.Port > maxPort {
		return fmt.Errorf("%w: port %d is out of range 1-%d", ErrInvalidServerConfigs, s.Port, maxPort)
	}

	if _, err := ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return nil
}

func (l *Logger) validate() error {
	var errs []error

	if strings.TrimSpace(l.Path) == "" {
		errs = append(errs, errors.New("empty path"))
	}

	if _, err := ParseLevel(l.Level); err != nil {
		errs = append(errs, err)
	}

	if _, ok := supportedEncodings[strings.ToLower(l.Encoding)]; !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, l.Encoding))
	}

	if _, err := ParseRotation(l.Rotation); err != nil {
		errs = append(errs, err)
	}

	if _, err := ParseRetention(l.Retention); err != nil {
		errs = append(errs, err)
	}

	if _, err := l.Compress(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidLoggerConfigs, errors.Join(errs...))
	}

	return nil
}

// Compress reports whether rotated-out files are gzip-compressed.
// Empty and "none" disable compression; "gz" and "gzip" enable it.
func (l *Logger) Compress() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(l.Compression)) {
	case "", "none":
		return false, nil
	case "gz", "gzip":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedCompression, l.Compression)
	}
}

func (s Storage) validate() error {
	switch s.Files.Backend {
	case "", FileBackendLocal:
		return nil
	case FileBackendMinio:
		m := s.Files.Minio
		if m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "" {
			return fmt.Errorf("%w: incomplete minio settings", ErrInvalidStorageConfigs)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown file backend %q", ErrInvalidStorageConfigs, s.Files.Backend)
	}
}
