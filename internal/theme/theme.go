// Package theme is the single source of truth for the operator's visual
// preferences. The active theme is persisted as JSON at
// ~/.config/sassmon/theme.json (or the platform-equivalent path returned
// by os.UserConfigDir) and projected onto a root Scope that the rest of
// the UI reads its colors from.
package theme

import "encoding/json"

// Mode selects which of the two palette tables is applied.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Valid reports whether m is one of the two supported modes.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// Config holds the operator's visual preference. A Config is always
// fully populated: loading an absent or unparsable record yields
// Default(), never a partial value.
type Config struct {
	Mode         Mode   `json:"mode"`
	PrimaryColor string `json:"primary_color"`
	BorderRadius int    `json:"border_radius"`
}

// Default returns the hardcoded default theme.
func Default() Config {
	return Config{
		Mode:         ModeLight,
		PrimaryColor: "#1890ff",
		BorderRadius: 6,
	}
}

// valid reports whether a decoded record has the full expected shape.
// Used by Import, the only entry point for externally-sourced data.
func (c Config) valid() bool {
	return c.Mode.Valid() && c.PrimaryColor != "" && c.BorderRadius >= 0
}

// Export returns the config serialized as indented JSON.
func (c Config) Export() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
