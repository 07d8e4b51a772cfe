package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/service"
	"github.com/MKhiriev/go-web-scaffold/internal/store"
)

// errorStatuses is matched top to bottom; the first sentinel found in the
// error chain decides the status.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrNegativeNumber, http.StatusBadRequest},
	{ErrNotANumber, http.StatusUnprocessableEntity},
	{ErrNumberOutOfRange, http.StatusUnprocessableEntity},
	{ErrInvalidUserBody, http.StatusUnprocessableEntity},
	{ErrMissingFile, http.StatusUnprocessableEntity},

	{service.ErrInvalidFileName, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity},

	{store.ErrUserAlreadyExists, http.StatusConflict},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
