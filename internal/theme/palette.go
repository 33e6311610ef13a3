package theme

// Palette maps semantic visual roles to concrete colors. Which table is
// used depends on the mode alone; the accent color and corner radius
// are layered on top separately by Apply.
type Palette map[string]string

var lightPalette = Palette{
	"bg-primary":       "#ffffff",
	"bg-secondary":     "#fafafa",
	"bg-tertiary":      "#f0f0f0",
	"bg-hover":         "#f5f5f5",
	"text-primary":     "#262626",
	"text-secondary":   "#595959",
	"text-disabled":    "#bfbfbf",
	"border-primary":   "#d9d9d9",
	"border-secondary": "#f0f0f0",
	"shadow":           "rgba(0, 0, 0, 0.1)",
}

var darkPalette = Palette{
	"bg-primary":       "#141414",
	"bg-secondary":     "#1f1f1f",
	"bg-tertiary":      "#262626",
	"bg-hover":         "#303030",
	"text-primary":     "#ffffff",
	"text-secondary":   "#a6a6a6",
	"text-disabled":    "#595959",
	"border-primary":   "#434343",
	"border-secondary": "#303030",
	"shadow":           "rgba(0, 0, 0, 0.3)",
}

// chromeHint is the fixed per-mode terminal background hint. It tracks
// the mode, not the accent color.
var chromeHint = map[Mode]string{
	ModeLight: "#ffffff",
	ModeDark:  "#141414",
}

// PaletteFor returns a copy of the palette table for mode. Unknown
// modes fall back to the light table.
func PaletteFor(mode Mode) Palette {
	src := lightPalette
	if mode == ModeDark {
		src = darkPalette
	}
	p := make(Palette, len(src))
	for role, color := range src {
		p[role] = color
	}
	return p
}
