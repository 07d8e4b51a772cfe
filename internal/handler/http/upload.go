package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/models"
)

const txtFileField = "txtFile"

// nextTxtFilePart advances the multipart stream to the txtFile part and
// returns it with its filename as sent by the client.
//
// mime/multipart reduces filenames to their base element, which would hide
// traversal attempts from validation, so the raw Content-Disposition value
// is parsed instead.
func nextTxtFilePart(r *http.Request) (*multipart.Part, string, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrMissingFile, err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, "", ErrMissingFile
		}
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrMissingFile, err)
		}

		if part.FormName() != txtFileField {
			continue
		}

		_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrMissingFile, err)
		}
		name, ok := params["filename"]
		if !ok {
			return nil, "", fmt.Errorf("%w: %s is not a file", ErrMissingFile, txtFileField)
		}
		return part, name, nil
	}
}

func (h *Handler) saveTxtFile(w http.ResponseWriter, r *http.Request) {
	part, name, err := nextTxtFilePart(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer part.Close()

	if err = h.services.FileService.SaveTextFile(r.Context(), name, part); err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, models.OK(), http.StatusOK)
}

func (h *Handler) handleTxtFile(w http.ResponseWriter, r *http.Request) {
	part, name, err := nextTxtFilePart(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer part.Close()

	if _, err = h.services.FileService.HandleTextFile(r.Context(), name, part); err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, models.OK(), http.StatusOK)
}
