package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Rotation is the parsed form of [Logger.Rotation]. Exactly one of the
// fields is set.
type Rotation struct {
	// Size is the file size in bytes that triggers a new file.
	Size int64

	// Every is the interval after which a new file is started.
	Every time.Duration
}

// SizeMB returns Size rounded up to whole megabytes, at least 1.
func (r Rotation) SizeMB() int {
	if r.Size <= 0 {
		return 0
	}
	return max(1, int(math.Ceil(float64(r.Size)/float64(humanize.MiByte))))
}

// Retention is the parsed form of [Logger.Retention]. Exactly one of the
// fields is set.
type Retention struct {
	// Count is the number of rotated files kept.
	Count int

	// Age is how long rotated files are kept.
	Age time.Duration
}

// AgeDays returns Age rounded up to whole days.
func (r Retention) AgeDays() int {
	if r.Age <= 0 {
		return 0
	}
	return int(math.Ceil(r.Age.Hours() / 24))
}

var intervalUnits = map[string]time.Duration{
	"second":  time.Second,
	"seconds": time.Second,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
	"week":    7 * 24 * time.Hour,
	"weeks":   7 * 24 * time.Hour,
	"month":   30 * 24 * time.Hour,
	"months":  30 * 24 * time.Hour,
}

// ParseRotation parses a rotation threshold such as "10 MB", "500 KiB",
// "1 day", "12 hours" or "24h".
func ParseRotation(s string) (Rotation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rotation{}, fmt.Errorf("%w: empty rotation", ErrInvalidRotation)
	}

	if every, err := parseInterval(s); err == nil {
		return Rotation{Every: every}, nil
	}

	size, err := humanize.ParseBytes(s)
	if err != nil || size == 0 {
		return Rotation{}, fmt.Errorf("%w: %q", ErrInvalidRotation, s)
	}

	return Rotation{Size: int64(size)}, nil
}

// ParseRetention parses a retention policy such as "5", "5 files",
// "10 days" or "72h".
func ParseRetention(s string) (Retention, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Retention{}, fmt.Errorf("%w: empty retention", ErrInvalidRetention)
	}

	countStr := strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(s, "files"), "file"))
	if count, err := strconv.Atoi(countStr); err == nil {
		if count < 1 {
			return Retention{}, fmt.Errorf("%w: %q", ErrInvalidRetention, s)
		}
		return Retention{Count: count}, nil
	}

	age, err := parseInterval(s)
	if err != nil {
		return Retention{}, fmt.Errorf("%w: %q", ErrInvalidRetention, s)
	}

	return Retention{Age: age}, nil
}

// parseInterval accepts "<n> <unit>" with the units of intervalUnits, or
// anything time.ParseDuration understands.
func parseInterval(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("non-positive interval %q", s)
		}
		return d, nil
	}

	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != 2 {
		return 0, fmt.Errorf("invalid interval %q", s)
	}

	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid interval %q", s)
	}

	unit, ok := intervalUnits[fields[1]]
	if !ok {
		return 0, fmt.Errorf("invalid interval unit %q", fields[1])
	}

	return time.Duration(n * float64(unit)), nil
}
