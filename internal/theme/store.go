package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const (
	appDir   = "sassmon"
	fileName = "theme.json"
)

// DefaultPath returns the default theme file path.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("theme: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Manager owns the persisted theme record and the live Scope it is
// projected onto. It is constructed once at process start; all reads
// and writes of the visual preference go through it.
//
// A read never fails: storage problems are absorbed and logged, and the
// default record is returned instead. A write failure is likewise
// logged, and the in-memory record stays effective for the session.
type Manager struct {
	path   string
	logger *zap.Logger
	scope  *Scope

	// mu guards current against the watcher goroutine, which reloads
	// the record while the main goroutine may be reading it.
	mu sync.Mutex

	// current is the in-session record. It survives persistence
	// failures so a saved-but-unwritable theme still applies.
	current *Config

	initialized bool
	ambientHook AmbientHook
}

// NewManager returns a Manager persisting to path. An empty path uses
// DefaultPath; if even that cannot be resolved the manager operates
// in-memory only. A nil logger is replaced with zap.NewNop().
func NewManager(path string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		resolved, err := DefaultPath()
		if err != nil {
			logger.Warn("theme: no config directory, operating in-memory", zap.Error(err))
		}
		path = resolved
	}
	return &Manager{path: path, logger: logger, scope: newScope()}
}

// Scope returns the live root scope the theme is applied to.
func (m *Manager) Scope() *Scope { return m.scope }

// Current returns the stored theme record, or the default record when
// nothing is stored or the stored value cannot be parsed. It never
// returns an error; a theme read must never block the UI.
func (m *Manager) Current() Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		return *m.current
	}

	cfg := Default()
	if m.path != "" {
		data, err := os.ReadFile(m.path)
		switch {
		case err == nil:
			var stored Config
			if jsonErr := json.Unmarshal(data, &stored); jsonErr != nil || !stored.valid() {
				m.logger.Warn("theme: stored record unparsable, using default",
					zap.String("path", m.path), zap.Error(jsonErr))
			} else {
				cfg = stored
			}
		case !os.IsNotExist(err):
			m.logger.Warn("theme: read failed, using default",
				zap.String("path", m.path), zap.Error(err))
		}
	}

	m.current = &cfg
	return cfg
}

// Save replaces the stored record with cfg. Write failures (quota,
// permissions) are logged and absorbed; cfg remains the effective
// in-session value regardless.
func (m *Manager) Save(cfg Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &cfg

	if m.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		m.logger.Warn("theme: persist failed", zap.String("path", m.path), zap.Error(err))
		return
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		m.logger.Warn("theme: persist failed", zap.Error(err))
		return
	}
	data = append(data, '\n')
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		m.logger.Warn("theme: persist failed", zap.String("path", m.path), zap.Error(err))
	}
}

// ToggleMode flips light<->dark, persists and applies the result, and
// returns the new mode.
func (m *Manager) ToggleMode() Mode {
	cfg := m.Current()
	if cfg.Mode == ModeLight {
		cfg.Mode = ModeDark
	} else {
		cfg.Mode = ModeLight
	}
	m.Save(cfg)
	m.Apply(cfg)
	return cfg.Mode
}

// SetMode replaces only the mode, preserving the rest of the record.
func (m *Manager) SetMode(mode Mode) {
	cfg := m.Current()
	cfg.Mode = mode
	m.Save(cfg)
	m.Apply(cfg)
}

// SetPrimaryColor replaces only the accent color.
func (m *Manager) SetPrimaryColor(color string) {
	cfg := m.Current()
	cfg.PrimaryColor = color
	m.Save(cfg)
	m.Apply(cfg)
}

// SetBorderRadius replaces only the corner radius.
func (m *Manager) SetBorderRadius(radius int) {
	cfg := m.Current()
	cfg.BorderRadius = radius
	m.Save(cfg)
	m.Apply(cfg)
}

// ResetToDefault unconditionally saves and applies the default record.
func (m *Manager) ResetToDefault() {
	cfg := Default()
	m.Save(cfg)
	m.Apply(cfg)
}

// importRecord mirrors Config with pointer fields so Import can tell an
// absent field from a zero value.
type importRecord struct {
	Mode         *string  `json:"mode"`
	PrimaryColor *string  `json:"primary_color"`
	BorderRadius *float64 `json:"border_radius"`
}

// Import parses an externally-sourced theme record. On any validation
// failure it returns false without touching the stored theme; on
// success it saves, applies, and returns true. Malformed input is an
// expected condition here, not an error.
func (m *Manager) Import(raw string) bool {
	var rec importRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		m.logger.Warn("theme: import rejected", zap.Error(err))
		return false
	}
	if rec.Mode == nil || rec.PrimaryColor == nil || rec.BorderRadius == nil {
		return false
	}

	cfg := Config{
		Mode:         Mode(*rec.Mode),
		PrimaryColor: *rec.PrimaryColor,
		BorderRadius: int(*rec.BorderRadius),
	}
	if !cfg.valid() || float64(cfg.BorderRadius) != *rec.BorderRadius {
		return false
	}

	m.Save(cfg)
	m.Apply(cfg)
	return true
}

// reload drops the in-session record so the next Current() re-reads
// storage. Used by the watcher when another process rewrites the file.
func (m *Manager) reload() Config {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return m.Current()
}
