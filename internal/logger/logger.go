// Package logger wraps the Uber zap logging library behind a process-wide
// sugared logger with a configurable level.
package logger

import (
	"errors"
	"os"

	"go.uber.org/zap"
)

// Log is the process-wide sugared logger. It defaults to a no-op logger so
// packages can log before Init runs (and so tests stay quiet).
var Log = zap.NewNop().Sugar()

// Init builds the real logger at the given level and installs it in Log.
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes buffered entries. Call it on shutdown.
func Sync() error {
	if err := Log.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}
	return nil
}
