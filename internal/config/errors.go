package config

import "errors"

// Validation errors returned while loading the configuration. Every one of
// them is fatal at startup; callers can match against them with [errors.Is].
var (
	// ErrMissingServerSection indicates that the JSON file has neither a
	// "uvicorn" nor a "server" block.
	ErrMissingServerSection = errors.New("missing required section `uvicorn`")
	// ErrMissingField indicates that a required key is absent from a block.
	ErrMissingField = errors.New("field required")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, empty host or a port out of range).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLoggerConfigs indicates invalid file sink settings.
	ErrInvalidLoggerConfigs = errors.New("invalid logger configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown file backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnknownLevel indicates a level name that is not recognized.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrInvalidRotation indicates a rotation threshold that is neither a
	// size nor an interval.
	ErrInvalidRotation = errors.New("invalid rotation")
	// ErrInvalidRetention indicates a retention policy that is neither a
	// file count nor an age.
	ErrInvalidRetention = errors.New("invalid retention")
	// ErrUnsupportedEncoding indicates a log file encoding other than UTF-8.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	// ErrUnsupportedCompression indicates a compression scheme other than gzip.
	ErrUnsupportedCompression = errors.New("unsupported compression")
)
