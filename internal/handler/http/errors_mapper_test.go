package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/internal/service"
	"github.com/MKhiriev/go-web-scaffold/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"negative number", ErrNegativeNumber, http.StatusBadRequest},
		{"not a number", fmt.Errorf("parse: %w", ErrNotANumber), http.StatusUnprocessableEntity},
		{"invalid user data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("age")), http.StatusUnprocessableEntity},
		{"duplicate user", store.ErrUserAlreadyExists, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"negative wins over not a number", errors.Join(ErrNotANumber, ErrNegativeNumber), http.StatusBadRequest},
		{"invalid file name wins over invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrInvalidFileName), http.StatusBadRequest},
		{"duplicate wins over query failure", fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrUserAlreadyExists), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for j := 0; j < 50; j++ {
				assert.Equal(t, tt.want, statusFromError(tt.err))
			}
		})
	}
}
