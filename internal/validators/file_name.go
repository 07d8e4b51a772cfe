package validators

import (
	"context"
	"strings"
)

// FileNameValidator checks names under which uploads are stored. A valid
// name addresses a single entry directly inside the upload directory.
type FileNameValidator struct {
}

func NewFileNameValidator() Validator {
	return &FileNameValidator{}
}

// Validate accepts a string. Field scoping is not supported, any field
// argument is ignored.
func (v *FileNameValidator) Validate(_ context.Context, obj any, _ ...string) error {
	name, ok := obj.(string)
	if !ok {
		return ErrUnsupportedType
	}

	switch {
	case name == "":
		return ErrEmptyFileName
	case name == "." || name == "..":
		return ErrReservedFileName
	case strings.ContainsAny(name, `/\`):
		return ErrFileNameSeparator
	case strings.ContainsRune(name, 0):
		return ErrFileNameNUL
	}

	return nil
}
