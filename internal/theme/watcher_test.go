package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_ReloadsOnExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	m := NewManager(path, nil)
	m.Save(Default())

	changes := make(chan Config, 1)
	stop, err := m.Watch(func(cfg Config) {
		select {
		case changes <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer stop()

	// Simulate another process rewriting the stored record.
	external := `{"mode":"dark","primary_color":"#13c2c2","border_radius":8}`
	if err := os.WriteFile(path, []byte(external), 0o644); err != nil {
		t.Fatalf("failed to rewrite theme file: %v", err)
	}

	select {
	case cfg := <-changes:
		if cfg.Mode != ModeDark {
			t.Errorf("expected reloaded mode dark, got %s", cfg.Mode)
		}
		if m.Scope().Mode() != ModeDark {
			t.Errorf("expected scope re-applied to dark, got %s", m.Scope().Mode())
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch notification")
	}
}

func TestWatch_InMemoryManagerIsNoop(t *testing.T) {
	m := &Manager{scope: newScope()}

	stop, err := m.Watch(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stop()
}
