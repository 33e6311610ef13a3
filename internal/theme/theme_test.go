package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.json")
	return NewManager(path, nil)
}

func TestCurrent_MissingFile(t *testing.T) {
	m := newTestManager(t)

	got := m.Current()
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("theme mismatch (-want +got):\n%s", diff)
	}
}

func TestCurrent_UnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	m := NewManager(path, nil)
	got := m.Current()
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("expected default theme for unparsable file (-want +got):\n%s", diff)
	}
}

func TestSaveAndCurrent_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	want := Config{Mode: ModeDark, PrimaryColor: "#13c2c2", BorderRadius: 8}
	m.Save(want)

	if diff := cmp.Diff(want, m.Current()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// A fresh manager over the same file sees the persisted record.
	reread := NewManager(m.path, nil)
	if diff := cmp.Diff(want, reread.Current()); diff != "" {
		t.Errorf("persisted record mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_UnwritablePathStaysEffective(t *testing.T) {
	// A directory path cannot be written as a file.
	dir := t.TempDir()
	m := NewManager(dir, nil)

	want := Config{Mode: ModeDark, PrimaryColor: "#722ed1", BorderRadius: 4}
	m.Save(want)

	if diff := cmp.Diff(want, m.Current()); diff != "" {
		t.Errorf("in-session record mismatch after failed persist (-want +got):\n%s", diff)
	}
}

func TestToggleMode_TwiceReturnsToOriginal(t *testing.T) {
	m := newTestManager(t)
	original := m.Current()

	first := m.ToggleMode()
	if first != ModeDark {
		t.Errorf("expected first toggle to yield dark, got %s", first)
	}
	second := m.ToggleMode()
	if second != original.Mode {
		t.Errorf("expected second toggle to restore %s, got %s", original.Mode, second)
	}

	got := m.Current()
	if diff := cmp.Diff(original, got); diff != "" {
		t.Errorf("record changed beyond mode (-want +got):\n%s", diff)
	}
}

func TestSetPrimaryColor_PreservesRest(t *testing.T) {
	m := newTestManager(t)
	m.SetMode(ModeDark)
	m.SetPrimaryColor("#fa8c16")

	got := m.Current()
	want := Config{Mode: ModeDark, PrimaryColor: "#fa8c16", BorderRadius: Default().BorderRadius}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("theme mismatch (-want +got):\n%s", diff)
	}
}

func TestResetToDefault(t *testing.T) {
	m := newTestManager(t)
	m.Save(Config{Mode: ModeDark, PrimaryColor: "#000000", BorderRadius: 2})

	m.ResetToDefault()
	if diff := cmp.Diff(Default(), m.Current()); diff != "" {
		t.Errorf("theme mismatch (-want +got):\n%s", diff)
	}
}

func TestImport_Valid(t *testing.T) {
	m := newTestManager(t)

	ok := m.Import(`{"mode":"dark","primary_color":"#13c2c2","border_radius":8}`)
	if !ok {
		t.Fatal("expected import to succeed")
	}

	want := Config{Mode: ModeDark, PrimaryColor: "#13c2c2", BorderRadius: 8}
	if diff := cmp.Diff(want, m.Current()); diff != "" {
		t.Errorf("theme mismatch (-want +got):\n%s", diff)
	}
	if m.Scope().Mode() != ModeDark {
		t.Errorf("expected scope tagged dark, got %s", m.Scope().Mode())
	}
}

func TestImport_Rejected(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not json"},
		{"invalid mode", `{"mode":"blue","primary_color":"#1890ff","border_radius":6}`},
		{"missing primary color", `{"mode":"light","border_radius":6}`},
		{"missing border radius", `{"mode":"light","primary_color":"#1890ff"}`},
		{"negative radius", `{"mode":"light","primary_color":"#1890ff","border_radius":-1}`},
		{"fractional radius", `{"mode":"light","primary_color":"#1890ff","border_radius":6.5}`},
		{"wrong types", `{"mode":"light","primary_color":12,"border_radius":6}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			before := Config{Mode: ModeDark, PrimaryColor: "#722ed1", BorderRadius: 4}
			m.Save(before)

			if m.Import(tt.raw) {
				t.Fatal("expected import to be rejected")
			}
			if diff := cmp.Diff(before, m.Current()); diff != "" {
				t.Errorf("stored theme mutated by rejected import (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExport_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	want := Config{Mode: ModeDark, PrimaryColor: "#13c2c2", BorderRadius: 8}
	m.Save(want)

	exported := m.Current().Export()

	other := newTestManager(t)
	if !other.Import(exported) {
		t.Fatal("expected exported theme to import cleanly")
	}
	if diff := cmp.Diff(want, other.Current()); diff != "" {
		t.Errorf("theme mismatch (-want +got):\n%s", diff)
	}
}
