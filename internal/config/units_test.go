package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRotation(t *testing.T) {
	tests := []struct {
		input   string
		want    Rotation
		wantErr bool
	}{
		{"10 MB", Rotation{Size: 10 * 1000 * 1000}, false},
		{"500 KiB", Rotation{Size: 500 * 1024}, false},
		{"1GB", Rotation{Size: 1000 * 1000 * 1000}, false},
		{"1 day", Rotation{Every: 24 * time.Hour}, false},
		{"12 hours", Rotation{Every: 12 * time.Hour}, false},
		{"1 week", Rotation{Every: 7 * 24 * time.Hour}, false},
		{"24h", Rotation{Every: 24 * time.Hour}, false},
		{"", Rotation{}, true},
		{"0 MB", Rotation{}, true},
		{"whenever", Rotation{}, true},
		{"2 fortnights", Rotation{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRotation(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRotation_SizeMB(t *testing.T) {
	assert.Equal(t, 0, Rotation{Every: time.Hour}.SizeMB())
	assert.Equal(t, 1, Rotation{Size: 500 * 1024}.SizeMB(), "sizes below a megabyte round up to 1")
	assert.Equal(t, 10, Rotation{Size: 10 * 1024 * 1024}.SizeMB())
	assert.Equal(t, 10, Rotation{Size: 10 * 1000 * 1000}.SizeMB())
}

func TestParseRetention(t *testing.T) {
	tests := []struct {
		input   string
		want    Retention
		wantErr bool
	}{
		{"5", Retention{Count: 5}, false},
		{"5 files", Retention{Count: 5}, false},
		{"1 file", Retention{Count: 1}, false},
		{"10 days", Retention{Age: 10 * 24 * time.Hour}, false},
		{"72h", Retention{Age: 72 * time.Hour}, false},
		{"0", Retention{}, true},
		{"", Retention{}, true},
		{"forever", Retention{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRetention(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRetention)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRetention_AgeDays(t *testing.T) {
	assert.Equal(t, 0, Retention{Count: 3}.AgeDays())
	assert.Equal(t, 10, Retention{Age: 10 * 24 * time.Hour}.AgeDays())
	assert.Equal(t, 1, Retention{Age: 12 * time.Hour}.AgeDays())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"Info", zerolog.InfoLevel},
		{"SUCCESS", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"critical", zerolog.FatalLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("chatty")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
