// Package config handles persistent user configuration for sassmon.
//
// Configuration is stored as JSON at ~/.config/sassmon/config.json (or
// the platform-equivalent path returned by os.UserConfigDir). The API
// base URL can additionally be overridden per-invocation through the
// SASSMON_API_URL environment variable, which a local .env file may
// provide.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	appDir   = "sassmon"
	fileName = "config.json"

	// EnvAPIURL overrides the configured API base URL when set.
	EnvAPIURL = "SASSMON_API_URL"

	// DefaultAPIBaseURL is used when neither the config file nor the
	// environment names an API endpoint.
	DefaultAPIBaseURL = "http://localhost:8080/api/v1"

	// DefaultPageSize is used when the config file does not set one.
	DefaultPageSize = 20
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	APIBaseURL   string `json:"api_base_url,omitempty"`
	PageSize     int    `json:"page_size,omitempty"`
	Debug        bool   `json:"debug,omitempty"`
	DebugLogPath string `json:"debug_log_path,omitempty"`
}

// LoadEnv reads a .env file from the working directory into the
// process environment, if one exists. Existing variables win.
func LoadEnv() {
	_ = godotenv.Load()
}

// ResolvedAPIBaseURL returns the API endpoint to use, preferring the
// SASSMON_API_URL environment variable over the config file over the
// built-in default.
func (c *Config) ResolvedAPIBaseURL() string {
	if env := os.Getenv(EnvAPIURL); env != "" {
		return env
	}
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return DefaultAPIBaseURL
}

// ResolvedPageSize returns the listing page size to use.
func (c *Config) ResolvedPageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return DefaultPageSize
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
// Otherwise it uses os.UserConfigDir which resolves to
// ~/Library/Application Support on macOS, ~/.config on Linux, and
// %AppData% on Windows.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

// loadFrom reads the config from the given path. If path is empty, the
// default Path() is used. Exported only for testing via LoadFrom.
func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

// saveTo writes the config to the given path. If path is empty, the
// default Path() is used.
func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
