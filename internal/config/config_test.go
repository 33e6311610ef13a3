package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "" {
		t.Errorf("expected empty APIBaseURL, got %q", cfg.APIBaseURL)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sassmon", "config.json")

	want := &Config{APIBaseURL: "https://admin.example.com/api/v1", PageSize: 50}
	if err := want.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	path := filepath.Join(dir, "config.json")

	cfg := &Config{APIBaseURL: "https://admin.example.com"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Verify the file exists.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSave_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	first := &Config{APIBaseURL: "https://staging.example.com"}
	if err := first.SaveTo(path); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := &Config{APIBaseURL: "https://prod.example.com"}
	if err := second.SaveTo(path); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.APIBaseURL != "https://prod.example.com" {
		t.Errorf("expected APIBaseURL %q, got %q", "https://prod.example.com", got.APIBaseURL)
	}
}

func TestResolvedAPIBaseURL(t *testing.T) {
	cfg := &Config{}
	if got := cfg.ResolvedAPIBaseURL(); got != DefaultAPIBaseURL {
		t.Errorf("empty config resolved to %q, want default", got)
	}

	cfg.APIBaseURL = "https://admin.example.com"
	if got := cfg.ResolvedAPIBaseURL(); got != "https://admin.example.com" {
		t.Errorf("configured URL resolved to %q", got)
	}

	t.Setenv(EnvAPIURL, "https://override.example.com")
	if got := cfg.ResolvedAPIBaseURL(); got != "https://override.example.com" {
		t.Errorf("env override resolved to %q", got)
	}
}

func TestResolvedPageSize(t *testing.T) {
	cfg := &Config{}
	if got := cfg.ResolvedPageSize(); got != DefaultPageSize {
		t.Errorf("empty config resolved to %d, want %d", got, DefaultPageSize)
	}

	cfg.PageSize = 100
	if got := cfg.ResolvedPageSize(); got != 100 {
		t.Errorf("configured page size resolved to %d", got)
	}
}
