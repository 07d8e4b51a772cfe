package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.HealthResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.ErrorResponse{Detail: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.ErrorResponse{Detail: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
}
