package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/store"
	"github.com/MKhiriev/go-web-scaffold/models"
)

const userAlreadyExistsMsg = "User already exists."

// maxNumberBodySize bounds the body accepted by the numeric endpoint.
const maxNumberBodySize = 1 << 20

func (h *Handler) getOrjsonResponse(w http.ResponseWriter, r *http.Request) {
	payload := map[string]string{"a": "alfa", "b": "bravo", "c": "charlie"}
	writeJSON(w, r, payload, http.StatusOK)
}

func (h *Handler) receiveNumber(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxNumberBodySize))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrNotANumber, err))
		return
	}

	number, err := parseNumber(body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := models.NumberResponse{Msg: "Received number: " + number}
	writeJSON(w, r, response, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, toUserDTOs(users), http.StatusOK)
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	user, err := decodeUser(r.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	err = h.services.UserService.AddUser(r.Context(), user)
	switch {
	case errors.Is(err, store.ErrUserAlreadyExists):
		writeResult(w, r, models.Failed(userAlreadyExistsMsg), http.StatusConflict)
	case err != nil:
		writeError(w, r, err)
	default:
		writeResult(w, r, models.OK(), http.StatusOK)
	}
}
