// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package logging builds the zap logger used as the diagnostic channel.
// The TUI owns the terminal, so logs go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the logger.
type Options struct {
	Path    string // log file; empty disables file logging
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug level
	Stderr  bool   // also log to stderr (never while the TUI runs)
}

// Logger bundles the zap logger with the file lock it holds.
type Logger struct {
	*zap.Logger

	path string
	lock *flock.Flock
}

// New builds a production zap logger writing JSON lines to opts.Path.
// The file is guarded by a lock next to it; when another instance holds the
// lock, this process logs to a pid-suffixed file instead.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Sampling = nil
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	result := &Logger{}

	if opts.Path != "" {
		path, lock, err := acquire(opts.Path)
		if err != nil {
			return nil, err
		}

		result.path = path
		result.lock = lock
	}

	// Internal zap errors go to the same sinks as the log.
	config.OutputPaths = sinkPaths(result.path, opts.Stderr)
	config.ErrorOutputPaths = sinkPaths(result.path, opts.Stderr)

	if len(config.OutputPaths) == 0 {
		result.Logger = zap.NewNop()

		return result, nil
	}

	logger, err := config.Build()
	if err != nil {
		result.release()

		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	result.Logger = logger.With(zap.Int("pid", os.Getpid()))

	return result, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Path returns the file the logger writes to, if any.
func (l *Logger) Path() string {
	return l.path
}

// Close flushes buffered entries and releases the file lock.
func (l *Logger) Close() error {
	// Sync on stderr fails with EINVAL on some platforms; it is not actionable.
	_ = l.Sync()

	return l.release()
}

func (l *Logger) release() error {
	if l.lock == nil {
		return nil
	}

	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("failed to release log lock: %w", err)
	}

	return nil
}

func acquire(path string) (string, *flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lock := flock.New(path + ".lock")

	locked, err := lock.TryLock()
	if err != nil {
		return "", nil, fmt.Errorf("failed to acquire log lock: %w", err)
	}

	if locked {
		return path, lock, nil
	}

	ext := filepath.Ext(path)
	alternate := strings.TrimSuffix(path, ext) + "." + strconv.Itoa(os.Getpid()) + ext

	return alternate, nil, nil
}

// sinkPaths lists the zap sinks for a log file and optional stderr tee.
func sinkPaths(path string, stderr bool) []string {
	var paths []string

	if path != "" {
		paths = append(paths, path)
	}

	if stderr {
		paths = append(paths, "stderr")
	}

	return paths
}

func parseLevel(value string) (zapcore.Level, error) {
	if value == "" {
		return zapcore.InfoLevel, nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(value))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", value, err)
	}

	return level, nil
}
