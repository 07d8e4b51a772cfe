package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/service"
	"github.com/MKhiriev/go-web-scaffold/internal/store"
	"github.com/MKhiriev/go-web-scaffold/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// ---- Stub: UserService ----

type stubUserService struct {
	users   []models.User
	addErr  error
	listErr error
	added   []models.User
}

func (s *stubUserService) AddUser(_ context.Context, user models.User) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, user)
	return nil
}

func (s *stubUserService) ListUsers(_ context.Context) ([]models.User, error) {
	return s.users, s.listErr
}

// ---- Stub: FileService ----

type stubFileService struct {
	mu      sync.Mutex
	name    string
	content []byte
	err     error
}

func (s *stubFileService) SaveTextFile(_ context.Context, name string, r io.Reader) error {
	return s.consume(name, r)
}

func (s *stubFileService) HandleTextFile(_ context.Context, name string, r io.Reader) (int64, error) {
	if err := s.consume(name, r); err != nil {
		return 0, err
	}
	return int64(len(s.content)), nil
}

func (s *stubFileService) consume(name string, r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.name = name
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	s.content = buf.Bytes()
	return s.err
}

// ---- Stub: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

// newTestHandler returns a production-mode Handler that logs nothing.
func newTestHandler() *Handler {
	return &Handler{
		traceIDs:    newTraceID,
		accessLevel: zerolog.InfoLevel,
		logger:      logger.Nop(),
	}
}

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// records decodes every JSON log line written so far.
func (b *syncBuffer) records(t *testing.T) []map[string]any {
	t.Helper()

	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(b.buf.Bytes()))
	for scanner.Scan() {
		var record map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record), scanner.Text())
		out = append(out, record)
	}
	require.NoError(t, scanner.Err())
	return out
}

// accessRecords returns only the access-log lines, recognised by their
// "method" field.
func (b *syncBuffer) accessRecords(t *testing.T) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, record := range b.records(t) {
		if _, ok := record["method"]; ok {
			out = append(out, record)
		}
	}
	return out
}

// newLoggedRouterHandler is [newStubRouterHandler] with its log output
// captured in the returned buffer.
func newLoggedRouterHandler(users *stubUserService, files *stubFileService) (*Handler, *syncBuffer) {
	buf := &syncBuffer{}
	h := newStubRouterHandler(users, files)
	h.logger = &logger.Logger{Logger: zerolog.New(buf)}
	return h, buf
}

// newStubRouterHandler builds a development Handler over stub services.
func newStubRouterHandler(users *stubUserService, files *stubFileService) *Handler {
	h := newTestHandler()
	h.development = true
	h.services = &service.Services{
		UserService:    users,
		FileService:    files,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
	return h
}

// newMemoryServices wires the real services over in-memory users and a
// temporary upload directory.
func newMemoryServices(t *testing.T) (*service.Services, string) {
	t.Helper()

	dir := t.TempDir()
	files, err := store.NewLocalFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	return &service.Services{
		UserService:    service.NewUserService(store.NewMemoryUserStorage(), logger.Nop()),
		FileService:    service.NewFileService(files, logger.Nop()),
		AppInfoService: &mockAppInfoService{version: "1.0.0"},
	}, dir
}
