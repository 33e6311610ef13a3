// Package logging builds the zap logger the rest of the program
// shares. Logging is off unless debug is enabled, and debug output
// goes to a file rather than the terminal so it never interleaves with
// rendered views.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appDir = "sassmon"

// DefaultLogPath returns the file debug logs are written to when no
// explicit path is configured.
func DefaultLogPath() string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, appDir, "debug.log")
}

// New returns a logger. With debug disabled it is a no-op logger;
// otherwise debug-level JSON output is appended to path (or the
// default log file when path is empty).
func New(debug bool, path string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build logger: %w", err)
	}
	return logger, nil
}
