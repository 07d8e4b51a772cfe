package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Logger: &Logger{
			Enable:      true,
			Path:        "logs/server.log",
			Level:       "DEBUG",
			Encoding:    "utf-8",
			Rotation:    "10 MB",
			Retention:   "10 days",
			Compression: "gz",
			Format:      "json",
		},
		Server: Server{
			Host:     "0.0.0.0",
			Port:     3001,
			LogLevel: "info",
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().validate())
}

func TestValidate_Server(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Server)
	}{
		{"empty host", func(s *Server) { s.Host = " " }},
		{"zero port", func(s *Server) { s.Port = 0 }},
		{"negative port", func(s *Server) { s.Port = -1 }},
		{"port too large", func(s *Server) { s.Port = 65536 }},
		{"unknown log level", func(s *Server) { s.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg.Server)

			err := cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidServerConfigs)
		})
	}
}

func TestValidate_Logger(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *Logger)
		wantErr error
	}{
		{"empty path", func(l *Logger) { l.Path = "" }, ErrInvalidLoggerConfigs},
		{"unknown level", func(l *Logger) { l.Level = "LOUD" }, ErrUnknownLevel},
		{"latin-1 encoding", func(l *Logger) { l.Encoding = "latin-1" }, ErrUnsupportedEncoding},
		{"bad rotation", func(l *Logger) { l.Rotation = "whenever" }, ErrInvalidRotation},
		{"bad retention", func(l *Logger) { l.Retention = "forever" }, ErrInvalidRetention},
		{"zip compression", func(l *Logger) { l.Compression = "zip" }, ErrUnsupportedCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.Logger)

			err := cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLoggerConfigs)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NilLoggerIsValid(t *testing.T) {
	cfg := validConfig()
	cfg.Logger = nil

	assert.NoError(t, cfg.validate())
}

func TestValidate_DisabledLoggerIsStillChecked(t *testing.T) {
	cfg := validConfig()
	cfg.Logger.Enable = false
	cfg.Logger.Encoding = "utf-16"

	assert.ErrorIs(t, cfg.validate(), ErrUnsupportedEncoding)
}

func TestValidate_Storage(t *testing.T) {
	tests := []struct {
		name    string
		files   Files
		wantErr bool
	}{
		{"default backend", Files{}, false},
		{"local backend", Files{Backend: FileBackendLocal, Dir: "uploads"}, false},
		{"complete minio", Files{Backend: FileBackendMinio, Minio: Minio{Endpoint: "minio:9000", AccessKey: "a", SecretKey: "s", Bucket: "b"}}, false},
		{"incomplete minio", Files{Backend: FileBackendMinio, Minio: Minio{Endpoint: "minio:9000"}}, true},
		{"unknown backend", Files{Backend: "ftp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Storage.Files = tt.files

			err := cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLogger_Compress(t *testing.T) {
	tests := []struct {
		compression string
		want        bool
		wantErr     bool
	}{
		{"", false, false},
		{"none", false, false},
		{"gz", true, false},
		{"GZIP", true, false},
		{"bz2", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.compression, func(t *testing.T) {
			l := &Logger{Compression: tt.compression}
			got, err := l.Compress()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedCompression)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
