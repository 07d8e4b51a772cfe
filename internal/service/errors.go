package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrInvalidFileName       = errors.New("invalid file name")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
