// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultJSONFilePath is the configuration file read when neither the CONFIG
// environment variable nor the -c / -config flag names one.
const DefaultJSONFilePath = "configs/settings.json"

// DevelopmentMode is the value of [StructuredConfig.Mode] that enables permissive CORS
// instead of static asset hosting. Any other value means production.
const DevelopmentMode = "dev"

// Defaults applied when the corresponding setting is empty.
const (
	DefaultClientDir = "client/build"
	DefaultUploadDir = "."
)

// StructuredConfig is the top-level configuration container for the
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and the JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Logger describes the optional file sink. Nil means no file logging
	// was configured at all.
	Logger *Logger `envPrefix:"LOGGER_"`

	// Server holds the listener, verbosity and deployment mode settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage selects the user and file storage backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Mode distinguishes development ("dev") from production. It is never
	// read from the JSON file.
	Mode string `env:"MODE"`

	// JSONFilePath is the path to the JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// IsDevelopment reports whether the server runs in development mode.
func (cfg *StructuredConfig) IsDevelopment() bool {
	return cfg.Mode == DevelopmentMode
}

// Logger describes the rotating file sink attached to the process logger.
type Logger struct {
	// Enable reports whether the sink is attached at all.
	Enable bool `env:"ENABLE"`

	// Path is the target log file.
	Path string `env:"PATH"`

	// Level is the minimum severity written to the file, normalized to
	// upper case (e.g. "DEBUG", "WARNING").
	Level string `env:"LEVEL"`

	// Encoding is the text encoding of the file. Only UTF-8 is supported.
	Encoding string `env:"ENCODING"`

	// Rotation is the size or interval that triggers a new file
	// (e.g. "10 MB", "1 day"). See [ParseRotation].
	Rotation string `env:"ROTATION"`

	// Retention is how many rotated files, or for how long, old files are
	// kept (e.g. "5", "10 days"). See [ParseRetention].
	Retention string `env:"RETENTION"`

	// Compression is applied to rotated-out files ("gz", "gzip" or empty).
	Compression string `env:"COMPRESSION"`

	// Format is the line template. Empty or "json" writes JSON lines.
	Format string `env:"FORMAT"`

	// DisableConsole silences stdout output when the sink is configured.
	DisableConsole bool `env:"DISABLE_CONSOLE"`
}

// Server holds network, verbosity and deployment settings for the HTTP server.
type Server struct {
	// Host is the bind host (e.g. "0.0.0.0").
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the bind port.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// LogLevel gates the server's own access and error records
	// (e.g. "info", "warning").
	// Env: SERVER_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ClientDir is the prebuilt static asset directory served in production.
	// Env: SERVER_CLIENT_DIR
	ClientDir string `env:"CLIENT_DIR"`

	// RequestTimeout bounds the time spent reading a request's headers.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings. An empty DSN
	// keeps users in memory.
	DB DB `envPrefix:"DB_"`

	// Files holds the upload destination settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational user store.
type DB struct {
	// DSN is a "postgres://", "postgresql://", "sqlite://" or "file:" data
	// source name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// File storage backends accepted by [Files.Backend].
const (
	FileBackendLocal = "local"
	FileBackendMinio = "minio"
)

// Files holds the settings of the upload destination.
type Files struct {
	// Backend is "local" (default) or "minio".
	// Env: STORAGE_FILES_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the directory uploaded files are written to by the local
	// backend.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`

	// Minio holds the object storage settings for the minio backend.
	Minio Minio `envPrefix:"MINIO_"`
}

// Minio holds connection settings for an S3-compatible bucket.
type Minio struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
}

// App holds application-level configuration values.
type App struct {
	// Version overrides the build version reported by /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Sources are merged in the
// following order, the first non-zero value winning:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2, or [DefaultJSONFilePath])
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation. Callers must treat
// an error as fatal.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
