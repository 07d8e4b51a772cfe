package http

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formPart struct {
	field    string
	filename string // empty means a plain form field
	content  []byte
}

func multipartRequest(t *testing.T, path string, parts ...formPart) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, p := range parts {
		header := make(textproto.MIMEHeader)
		disposition := fmt.Sprintf(`form-data; name=%q`, p.field)
		if p.filename != "" {
			disposition += fmt.Sprintf(`; filename=%q`, p.filename)
			header.Set("Content-Type", "text/plain")
		}
		header.Set("Content-Disposition", disposition)

		w, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = w.Write(p.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSaveTxtFile_Stub(t *testing.T) {
	tests := []struct {
		name        string
		parts       []formPart
		serviceErr  error
		wantStatus  int
		wantName    string
		wantContent string
	}{
		{
			name:        "stores upload",
			parts:       []formPart{{field: "txtFile", filename: "notes.txt", content: []byte("hello")}},
			wantStatus:  http.StatusOK,
			wantName:    "notes.txt",
			wantContent: "hello",
		},
		{
			name: "skips unrelated parts",
			parts: []formPart{
				{field: "comment", content: []byte("ignored")},
				{field: "txtFile", filename: "a.txt", content: []byte("payload")},
			},
			wantStatus:  http.StatusOK,
			wantName:    "a.txt",
			wantContent: "payload",
		},
		{
			name:       "missing field",
			parts:      []formPart{{field: "other", filename: "a.txt", content: []byte("x")}},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "field without filename",
			parts:      []formPart{{field: "txtFile", content: []byte("x")}},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "invalid file name",
			parts:      []formPart{{field: "txtFile", filename: "a.txt", content: []byte("x")}},
			serviceErr: fmt.Errorf("%w: bad", service.ErrInvalidFileName),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failure",
			parts:      []formPart{{field: "txtFile", filename: "a.txt", content: []byte("x")}},
			serviceErr: errors.New("no space left on device"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := &stubFileService{err: tt.serviceErr}
			router := newStubRouterHandler(&stubUserService{}, files).Init()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, multipartRequest(t, "/example/txt-file", tt.parts...))

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"success":true,"msg":null}`, rr.Body.String())
				assert.Equal(t, tt.wantName, files.name)
				assert.Equal(t, tt.wantContent, string(files.content))
			}
		})
	}
}

func TestSaveTxtFile_NotMultipart(t *testing.T) {
	router := newStubRouterHandler(&stubUserService{}, &stubFileService{}).Init()

	rr := serve(t, router, http.MethodPost, "/example/txt-file", `{"txtFile":"x"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), `"detail"`)
}

func TestSaveTxtFile_WritesFilesToDisk(t *testing.T) {
	services, dir := newMemoryServices(t)
	h := newTestHandler()
	h.development = true
	h.services = services
	router := h.Init()

	for _, size := range []int{0, 1, 1023, 1024, 1025, 4096 + 7} {
		t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
			content := bytes.Repeat([]byte("x"), size)
			name := fmt.Sprintf("file-%d.txt", size)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, multipartRequest(t, "/example/txt-file",
				formPart{field: "txtFile", filename: name, content: content}))
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			stored, err := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, err)
			assert.Equal(t, content, stored)
		})
	}

	t.Run("same name overwrites", func(t *testing.T) {
		for _, content := range []string{"first upload, longer", "second"} {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, multipartRequest(t, "/example/txt-file",
				formPart{field: "txtFile", filename: "same.txt", content: []byte(content)}))
			require.Equal(t, http.StatusOK, rr.Code)
		}

		stored, err := os.ReadFile(filepath.Join(dir, "same.txt"))
		require.NoError(t, err)
		assert.Equal(t, "second", string(stored))
	})

	for _, name := range []string{"../escape.txt", "sub/dir.txt", `..\win.txt`, ".."} {
		t.Run("rejects "+name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, multipartRequest(t, "/example/txt-file",
				formPart{field: "txtFile", filename: name, content: []byte("x")}))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			_, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt"))
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestHandleTxtFile(t *testing.T) {
	t.Run("reads upload", func(t *testing.T) {
		files := &stubFileService{}
		router := newStubRouterHandler(&stubUserService{}, files).Init()

		content := strings.Repeat("line\n", 500)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, multipartRequest(t, "/example/handle-txt-file",
			formPart{field: "txtFile", filename: "big.txt", content: []byte(content)}))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"msg":null}`, rr.Body.String())
		assert.Equal(t, "big.txt", files.name)
		assert.Equal(t, content, string(files.content))
	})

	t.Run("missing field", func(t *testing.T) {
		router := newStubRouterHandler(&stubUserService{}, &stubFileService{}).Init()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, multipartRequest(t, "/example/handle-txt-file",
			formPart{field: "file", filename: "a.txt", content: []byte("x")}))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("file name is not validated", func(t *testing.T) {
		services, dir := newMemoryServices(t)
		h := newTestHandler()
		h.development = true
		h.services = services
		router := h.Init()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, multipartRequest(t, "/example/handle-txt-file",
			formPart{field: "txtFile", filename: "../anything.txt", content: []byte("x")}))

		assert.Equal(t, http.StatusOK, rr.Code)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
