package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsJSONResponses(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		status     int
		wantStatus int
	}{
		{"number reply", models.NumberResponse{Msg: "Received number: 5"}, http.StatusOK, http.StatusOK},
		{"duplicate user", models.Failed(userAlreadyExistsMsg), http.StatusConflict, http.StatusConflict},
		{"validation error", models.ErrorResponse{Detail: "invalid user body"}, http.StatusUnprocessableEntity, http.StatusUnprocessableEntity},
		{"unencodable body", make(chan int), http.StatusOK, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			writeJSON(w, httptest.NewRequest(http.MethodGet, "/example/users", nil), tt.body, tt.status)

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, rr.Body.Len(), w.size)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte(`{"success":false,"msg":"User already exists."}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, w.status)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Zero(t, w.status)

	_, err := w.Write([]byte("[]"))
	require.NoError(t, err)
	_, err = w.Write([]byte("\n"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_SupportsResponseController(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
	require.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
