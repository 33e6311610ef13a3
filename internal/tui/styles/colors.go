// Package styles provides the centralized color palette and style
// definitions for the sassmon TUI. Colors are not hardcoded here: they
// are resolved from the active theme scope, so a light/dark toggle or
// a new primary color re-skins every view through a single Sync call.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"sassmon/internal/theme"
)

// --- Color palette (resolved from the theme scope) ---

var (
	// Core text
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextDisabled  lipgloss.Color

	// Accent
	Primary lipgloss.Color

	// Status
	Green  = lipgloss.Color("#52c41a")
	Yellow = lipgloss.Color("#faad14")
	Red    = lipgloss.Color("#ff4d4f")

	// Surfaces
	SurfaceBg       lipgloss.Color
	SurfaceAlt      lipgloss.Color
	SurfaceHover    lipgloss.Color
	BorderPrimary   lipgloss.Color
	BorderSecondary lipgloss.Color
)

func init() {
	// Start from the dark palette so the package is usable before the
	// first Sync.
	syncColors(theme.PaletteFor(theme.ModeDark), "#1890ff")
}

func syncColors(p theme.Palette, primary string) {
	TextPrimary = lipgloss.Color(p["text-primary"])
	TextSecondary = lipgloss.Color(p["text-secondary"])
	TextDisabled = lipgloss.Color(p["text-disabled"])
	Primary = lipgloss.Color(primary)
	SurfaceBg = lipgloss.Color(p["bg-primary"])
	SurfaceAlt = lipgloss.Color(p["bg-secondary"])
	SurfaceHover = lipgloss.Color(p["bg-hover"])
	BorderPrimary = lipgloss.Color(p["border-primary"])
	BorderSecondary = lipgloss.Color(p["border-secondary"])
}

// Sync recomputes every color and style from the given scope. Call it
// after theme.Manager.Apply so views pick up the active mode and
// primary color.
func Sync(s *theme.Scope) {
	if s == nil {
		return
	}
	syncColors(theme.PaletteFor(s.Mode()), s.Var("primary"))
	rebuildStyles()
}
