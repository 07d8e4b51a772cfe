package logger

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	queueSize = 4096

	// lumberjack falls back to 100 MB when MaxSize is zero.
	unlimitedSizeMB = 1 << 20
)

// fileSink is the asynchronous, level-filtered, rotating file writer
// attached by NewLoggerWithSink.
type fileSink struct {
	level    zerolog.Level
	rotator  *lumberjack.Logger
	async    *queueWriter
	report   io.Writer
	filtered *zerolog.FilteredLevelWriter

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// newFileSink builds the sink described by cfg. Failures that cannot be
// logged through the sink itself, such as a failed rotation, go to report.
func newFileSink(cfg config.Logger, report io.Writer) (*fileSink, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger sink: %w", err)
	}

	rotation, err := config.ParseRotation(cfg.Rotation)
	if err != nil {
		return nil, fmt.Errorf("logger sink: %w", err)
	}

	retention, err := config.ParseRetention(cfg.Retention)
	if err != nil {
		return nil, fmt.Errorf("logger sink: %w", err)
	}

	compress, err := cfg.Compress()
	if err != nil {
		return nil, fmt.Errorf("logger sink: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    unlimitedSizeMB,
		MaxBackups: retention.Count,
		MaxAge:     retention.AgeDays(),
		Compress:   compress,
		LocalTime:  true,
	}
	if rotation.Size > 0 {
		rotator.MaxSize = rotation.SizeMB()
	}

	var out io.WriteCloser = rotator
	if !isJSONFormat(cfg.Format) {
		out = newFormatWriter(cfg.Format, rotator)
	}

	async := newQueueWriter(out, queueSize, report)

	s := &fileSink{
		level:   level,
		rotator: rotator,
		async:   async,
		report:  report,
		filtered: &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: async},
			Level:  level,
		},
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go s.rotateEvery(rotation.Every)

	return s, nil
}

// Write accepts records without a level. They bypass the level filter.
func (s *fileSink) Write(p []byte) (int, error) {
	return s.filtered.Write(p)
}

// WriteLevel drops records below the sink's minimum level.
func (s *fileSink) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	return s.filtered.WriteLevel(level, p)
}

// rotateEvery rotates the file on a fixed interval until the sink is closed.
// A non-positive interval disables time-based rotation.
func (s *fileSink) rotateEvery(every time.Duration) {
	defer close(s.done)

	if every <= 0 {
		<-s.stop
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if err := s.rotator.Rotate(); err != nil {
				fmt.Fprintf(s.report, "logger: rotation failed: %v\n", err)
			}
		}
	}
}

// Close stops the rotation ticker, drains pending records and closes the file.
func (s *fileSink) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
		s.closeErr = s.async.Close()
	})
	return s.closeErr
}
