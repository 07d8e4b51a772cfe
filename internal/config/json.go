package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// StructuredJSONConfig mirrors the fixed JSON schema of the configuration
// file. Required scalars are pointers so that a missing key can be told
// apart from a zero value.
type StructuredJSONConfig struct {
	Logger *jsonLogger `json:"logger"`

	// Uvicorn is the historical name of the server block; Server is
	// accepted as an alias and wins when both are present.
	Uvicorn *jsonServer `json:"uvicorn"`
	Server  *jsonServer `json:"server"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`

		Files struct {
			Backend string `json:"backend"`
			Dir     string `json:"dir"`
			Minio   struct {
				Endpoint  string `json:"endpoint"`
				AccessKey string `json:"access_key"`
				SecretKey string `json:"secret_key"`
				Bucket    string `json:"bucket"`
			} `json:"minio"`
		} `json:"files"`
	} `json:"storage"`

	App struct {
		Version string `json:"version"`
	} `json:"app"`
}

type jsonLogger struct {
	Enable         *bool   `json:"enable"`
	Path           *string `json:"path"`
	Level          *string `json:"level"`
	Encoding       *string `json:"encoding"`
	Rotation       *string `json:"rotation"`
	Retention      *string `json:"retention"`
	Compression    *string `json:"compression"`
	Format         *string `json:"format"`
	DisableConsole bool    `json:"disable_console"`
}

type jsonServer struct {
	Host           *string  `json:"host"`
	Port           *int     `json:"port"`
	LogLevel       *string  `json:"log_level"`
	ClientDir      string   `json:"client_dir"`
	RequestTimeout Duration `json:"request_timeout"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("the configuration '%s' is invalid: %w", jsonFilePath, err)
	}

	cfg, err := jsonCfg.toStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("the configuration '%s' is invalid: %w", jsonFilePath, err)
	}

	return cfg, nil
}

func (j *StructuredJSONConfig) toStructuredConfig() (*StructuredConfig, error) {
	server := j.Server
	if server == nil {
		server = j.Uvicorn
	}
	if server == nil {
		return nil, ErrMissingServerSection
	}

	var missing []error
	required := func(present bool, field string) {
		if !present {
			missing = append(missing, fmt.Errorf("%w: %s", ErrMissingField, field))
		}
	}

	required(server.Host != nil, "uvicorn.host")
	required(server.Port != nil, "uvicorn.port")
	required(server.LogLevel != nil, "uvicorn.log_level")

	var logger *Logger
	if l := j.Logger; l != nil {
		required(l.Enable != nil, "logger.enable")
		required(l.Path != nil, "logger.path")
		required(l.Level != nil, "logger.level")
		required(l.Encoding != nil, "logger.encoding")
		required(l.Rotation != nil, "logger.rotation")
		required(l.Retention != nil, "logger.retention")
		required(l.Compression != nil, "logger.compression")
		required(l.Format != nil, "logger.format")

		if len(missing) == 0 {
			logger = &Logger{
				Enable:         *l.Enable,
				Path:           *l.Path,
				Level:          strings.ToUpper(*l.Level),
				Encoding:       *l.Encoding,
				Rotation:       *l.Rotation,
				Retention:      *l.Retention,
				Compression:    *l.Compression,
				Format:         *l.Format,
				DisableConsole: l.DisableConsole,
			}
		}
	}

	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	files := j.Storage.Files

	return &StructuredConfig{
		Logger: logger,
		Server: Server{
			Host:           *server.Host,
			Port:           *server.Port,
			LogLevel:       *server.LogLevel,
			ClientDir:      server.ClientDir,
			RequestTimeout: time.Duration(server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: j.Storage.DB.DSN,
			},
			Files: Files{
				Backend: files.Backend,
				Dir:     files.Dir,
				Minio: Minio{
					Endpoint:  files.Minio.Endpoint,
					AccessKey: files.Minio.AccessKey,
					SecretKey: files.Minio.SecretKey,
					Bucket:    files.Minio.Bucket,
				},
			},
		},
		App: App{
			Version: j.App.Version,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
