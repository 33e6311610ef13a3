package theme

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Scope is the root style scope every view reads its colors from. The
// applier writes named variables into it; views never talk to the
// Manager directly for colors, which is how a theme change reaches
// them without any explicit subscription.
//
// The file watcher applies from its own goroutine, so reads and writes
// are guarded.
type Scope struct {
	mu   sync.RWMutex
	mode Mode
	vars map[string]string

	// chrome is the terminal background hint for the current mode.
	chrome string

	// terminal, when set, receives an OSC 11 background hint on each
	// Apply so the host terminal chrome follows the mode.
	terminal io.Writer
}

func newScope() *Scope {
	return &Scope{mode: ModeLight, vars: map[string]string{}}
}

// Mode returns the mode tag last applied to the scope.
func (s *Scope) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Var returns the named variable, or "" when it has not been applied.
func (s *Scope) Var(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vars[name]
}

// VarNames returns the applied variable names in sorted order.
func (s *Scope) VarNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChromeHint returns the current terminal background hint color.
func (s *Scope) ChromeHint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chrome
}

// AttachTerminal directs background hints at w (normally os.Stdout).
// Detached scopes, as used in tests, skip the escape sequence.
func (s *Scope) AttachTerminal(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminal = w
}

// Apply projects cfg onto the manager's scope: tags it with the mode,
// writes every palette entry for that mode as a named variable, layers
// the accent color and corner radius on top, and refreshes the
// terminal background hint. Applying the same config twice leaves the
// scope in the same end state.
func (m *Manager) Apply(cfg Config) {
	s := m.scope
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = cfg.Mode

	for role, color := range PaletteFor(cfg.Mode) {
		s.vars[role] = color
	}
	s.vars["primary"] = cfg.PrimaryColor
	s.vars["border-radius"] = fmt.Sprintf("%d", cfg.BorderRadius)

	s.chrome = chromeHint[cfg.Mode]
	if s.chrome == "" {
		s.chrome = chromeHint[ModeLight]
	}
	if s.terminal != nil {
		// OSC 11 sets the terminal background color.
		fmt.Fprintf(s.terminal, "\x1b]11;%s\x07", s.chrome)
	}
}

// AmbientHook reacts to the host environment's light/dark preference.
type AmbientHook func(prefersDark bool)

// Initialize applies the stored theme and registers the ambient
// preference hook. Call it exactly once at process start; later calls
// are no-ops.
//
// The hook is an extension point only: it is recorded but never fired,
// matching the dashboard's behavior of not auto-following the system
// preference.
func (m *Manager) Initialize(hook AmbientHook) {
	if m.initialized {
		return
	}
	m.initialized = true

	m.Apply(m.Current())
	m.ambientHook = hook
}
