package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFileName     = errors.New("file name is required")
	ErrReservedFileName  = errors.New("file name is reserved")
	ErrFileNameSeparator = errors.New("file name must not contain path separators")
	ErrFileNameNUL       = errors.New("file name must not contain NUL bytes")
)
