package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/models"
)

const negativeNumberDetail = "The given number shouldn't be negative."

// writeError maps err to a status code and writes a {"detail": ...} body.
// Server-side failures are logged and their cause is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	detail := err.Error()
	switch {
	case errors.Is(err, ErrNegativeNumber):
		detail = negativeNumberDetail
	case status >= http.StatusInternalServerError:
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
		detail = http.StatusText(status)
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, r, models.ErrorResponse{Detail: detail}, status)
}

func writeResult(w http.ResponseWriter, r *http.Request, result models.Result, status int) {
	writeJSON(w, r, result, status)
}

// writeJSON sends body as an application/json response. A body that cannot
// be encoded is logged and replaced by a 500 {"detail": ...} response.
func writeJSON(w http.ResponseWriter, r *http.Request, body any, status int) {
	log := logger.FromRequest(r)

	data, err := json.Marshal(body)
	if err != nil {
		log.Err(err).Str("uri", r.RequestURI).Msg("error encoding response body")
		status = http.StatusInternalServerError
		data, _ = json.Marshal(models.ErrorResponse{Detail: http.StatusText(status)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(data); err != nil {
		log.Err(err).Msg("error writing response body")
	}
}
