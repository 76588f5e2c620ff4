// Package flightrecorder captures runtime traces of slow requests.
package flightrecorder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"sync/atomic"
	"time"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
)

const (
	// defaultMinAge is the minimum age of trace events to keep.
	defaultMinAge = 2 * time.Minute

	// defaultMaxBytes is the maximum size of the trace buffer.
	defaultMaxBytes = 32 * 1024 * 1024 // 32MB

	// captureCooldown is the minimum time between trace captures.
	captureCooldown = 15 * time.Minute
)

// Service keeps a rolling runtime trace in memory and flushes it to disk
// when a request is flagged as slow.
type Service struct {
	logger          *slog.Logger
	recorder        *trace.FlightRecorder
	tracesDirectory string
	lastCapture     atomic.Int64 // Unix timestamp of last capture
}

// New creates a flight recorder service writing traces under tracesDirectory.
func New(logger *slog.Logger, tracesDirectory string) (*Service, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if tracesDirectory == "" {
		return nil, errors.New("traces directory is required")
	}

	if stat, err := os.Stat(tracesDirectory); err != nil {
		if err = os.MkdirAll(tracesDirectory, 0o700); err != nil {
			return nil, errors.Wrap(err, "create traces directory")
		}
	} else if !stat.IsDir() {
		return nil, errors.New(fmt.Sprintf("traces path is not a directory: %s", tracesDirectory))
	}

	recorder := trace.NewFlightRecorder(trace.FlightRecorderConfig{
		MinAge:   defaultMinAge,
		MaxBytes: defaultMaxBytes,
	})
	if recorder == nil {
		return nil, errors.New("create flight recorder")
	}

	return &Service{
		logger:          logger,
		recorder:        recorder,
		tracesDirectory: tracesDirectory,
		lastCapture:     atomic.Int64{},
	}, nil
}

// Start begins recording into the rolling buffer.
func (s *Service) Start(ctx context.Context) error {
	if err := s.recorder.Start(); err != nil {
		return errors.Wrap(err, "start flight recorder")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder started",
		slog.String("traces_directory", s.tracesDirectory),
		slog.String("min_age", defaultMinAge.String()),
		slog.Uint64("max_bytes", defaultMaxBytes))

	return nil
}

// Stop ends recording.
func (s *Service) Stop(ctx context.Context) {
	s.recorder.Stop()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder stopped")
}

// CaptureSlowRequest flushes the rolling trace buffer to a file named after
// the request that triggered it. Captures are rate limited so that a burst of
// slow requests does not fill the disk.
func (s *Service) CaptureSlowRequest(ctx context.Context, method, path string, duration time.Duration) {
	now := time.Now().Unix()
	lastCapture := s.lastCapture.Load()

	if lastCapture > 0 && time.Duration(now-lastCapture)*time.Second < captureCooldown {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "skipping trace capture due to cooldown",
			slog.Time("last_capture", time.Unix(lastCapture, 0)))
		return
	}
	if !s.lastCapture.CompareAndSwap(lastCapture, now) {
		// Another goroutine won the race for this capture window.
		return
	}

	timestamp := time.Unix(now, 0).UTC().Format("20060102-150405")
	filename := fmt.Sprintf("slow-%s.trace", timestamp)
	fPath := filepath.Join(s.tracesDirectory, filename)

	file, err := os.Create(fPath)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to create trace file",
			slog.String("file", fPath), slog.Any("error", err))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to close trace file",
				slog.String("file", fPath), slog.Any("error", closeErr))
		}
	}()

	bytesWritten, err := s.recorder.WriteTo(file)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to write trace",
			slog.String("file", fPath), slog.Any("error", err))
		return
	}

	s.logger.LogAttrs(ctx, slog.LevelWarn, "captured slow request trace",
		slog.String("file", fPath),
		slog.String("method", method),
		slog.String("path", path),
		slog.Duration("duration", duration),
		slog.Int64("bytes", bytesWritten))
}
