package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"sassmon/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_APIURL(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "api-url", "https://admin.example.com/api/v1")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"https://admin.example.com/api/v1"`) {
		t.Errorf("expected confirmation with URL, got: %s", stdout)
	}

	// Verify it was persisted.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.APIBaseURL != "https://admin.example.com/api/v1" {
		t.Errorf("expected APIBaseURL to be persisted, got %q", cfg.APIBaseURL)
	}
}

func TestSet_PageSize(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "page-size", "50")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"50"`) {
		t.Errorf("expected confirmation, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.PageSize != 50 {
		t.Errorf("expected PageSize 50, got %d", cfg.PageSize)
	}
}

func TestSet_PageSize_Invalid(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "page-size", "lots")

	if !strings.Contains(stderr, "positive integer") {
		t.Errorf("expected validation error, got: %s", stderr)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestSet_KeyCaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "PAGE-SIZE", "25")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "page-size") {
		t.Errorf("expected normalized key name, got: %s", stdout)
	}
}
