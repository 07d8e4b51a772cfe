package http

import "errors"

var (
	// ErrClientDirNotFound is returned by [NewHandler] in production mode when
	// the static asset directory does not exist.
	ErrClientDirNotFound = errors.New("client directory not found")

	ErrNotANumber       = errors.New("body is not a number")
	ErrNumberOutOfRange = errors.New("number is out of range")
	ErrNegativeNumber   = errors.New("the given number shouldn't be negative")

	ErrInvalidUserBody = errors.New("invalid user body")
	ErrMissingFile     = errors.New("missing txtFile field")
)
