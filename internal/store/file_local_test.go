package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) (FileStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestNewLocalFileStorage_CreatesDir(t *testing.T) {
	_, dir := newTestLocalStorage(t)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalFileStorage_SaveFile(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "empty", size: 0},
		{name: "smaller than a chunk", size: chunkSize - 1},
		{name: "exactly one chunk", size: chunkSize},
		{name: "several chunks", size: 3*chunkSize + 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, dir := newTestLocalStorage(t)
			content := bytes.Repeat([]byte("a"), tt.size)

			// one byte at a time to exercise partial reads
			err := s.SaveFile(context.Background(), "data.txt", iotest.OneByteReader(bytes.NewReader(content)))
			require.NoError(t, err)

			got, err := os.ReadFile(filepath.Join(dir, "data.txt"))
			require.NoError(t, err)
			assert.Equal(t, content, got)
		})
	}
}

func TestLocalFileStorage_SaveFile_Overwrites(t *testing.T) {
	s, dir := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFile(ctx, "a.txt", strings.NewReader(strings.Repeat("long content ", 200))))
	require.NoError(t, s.SaveFile(ctx, "a.txt", strings.NewReader("short")))

	got, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestLocalFileStorage_SaveFile_CancelledContext(t *testing.T) {
	s, dir := newTestLocalStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.SaveFile(ctx, "a.txt", strings.NewReader("data"))
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "a.txt"))
	assert.True(t, os.IsNotExist(statErr), "partial file must be removed")
}

func TestLocalFileStorage_SaveFile_ReadError(t *testing.T) {
	s, dir := newTestLocalStorage(t)
	readErr := errors.New("connection reset")

	err := s.SaveFile(context.Background(), "a.txt", iotest.ErrReader(readErr))
	assert.ErrorIs(t, err, readErr)

	_, statErr := os.Stat(filepath.Join(dir, "a.txt"))
	assert.True(t, os.IsNotExist(statErr))
}
