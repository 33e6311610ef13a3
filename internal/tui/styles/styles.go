package styles

import (
	"github.com/charmbracelet/lipgloss"

	"sassmon/internal/domain"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title lipgloss.Style

	// Subtitle is used for secondary headings.
	Subtitle lipgloss.Style

	// Label is used for field names in detail views.
	Label lipgloss.Style

	// Value is used for field values in detail views.
	Value lipgloss.Style

	// MutedText is for help text, hints, and less important info.
	MutedText lipgloss.Style

	// AccentText is for highlighted interactive elements.
	AccentText lipgloss.Style

	// ErrorText is for error messages.
	ErrorText lipgloss.Style

	// SuccessText is for success messages.
	SuccessText lipgloss.Style

	// WarningText is for warning messages.
	WarningText lipgloss.Style
)

// --- Layout components ---

var (
	// Border is the default subtle border style.
	Border = lipgloss.RoundedBorder()

	// Card is a rounded-border panel for content sections.
	Card lipgloss.Style

	// CardActive is a card with an accent border for focused elements.
	CardActive lipgloss.Style
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle lipgloss.Style

	// KeyDescStyle is used for key descriptions in the footer (e.g. "quit").
	KeyDescStyle lipgloss.Style

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle lipgloss.Style
)

// --- Table styles ---

var (
	// TableHeader is the style for table header cells.
	TableHeader lipgloss.Style

	// TableCell is the style for table data cells.
	TableCell lipgloss.Style

	// TableSelectedRow is the style for the currently selected table row.
	TableSelectedRow lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	Title = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	Subtitle = lipgloss.NewStyle().Foreground(TextSecondary)
	Label = lipgloss.NewStyle().Foreground(TextSecondary).Bold(true)
	Value = lipgloss.NewStyle().Foreground(TextPrimary)
	MutedText = lipgloss.NewStyle().Foreground(TextDisabled)
	AccentText = lipgloss.NewStyle().Foreground(Primary)
	ErrorText = lipgloss.NewStyle().Foreground(Red).Bold(true)
	SuccessText = lipgloss.NewStyle().Foreground(Green).Bold(true)
	WarningText = lipgloss.NewStyle().Foreground(Yellow).Bold(true)

	Card = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(BorderPrimary).
		Padding(1, 2)
	CardActive = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(Primary).
		Padding(1, 2)

	KeyStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	KeyDescStyle = lipgloss.NewStyle().Foreground(TextDisabled)
	KeySepStyle = lipgloss.NewStyle().Foreground(BorderSecondary)

	TableHeader = lipgloss.NewStyle().Bold(true).Foreground(TextSecondary).Padding(0, 1)
	TableCell = lipgloss.NewStyle().Foreground(TextPrimary).Padding(0, 1)
	TableSelectedRow = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceHover).
		Bold(true).
		Padding(0, 1)
}

// --- Status badges ---

// StatusStyle returns a styled string for a health or subscription
// status value.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "healthy", "connected", "ok", domain.SubscriptionActive:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case "degraded", "warning", domain.SubscriptionExpiringSoon:
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	case "error", "down", "unhealthy", domain.SubscriptionExpired:
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(TextSecondary)
	}
}

// StatusIndicator returns a small dot + status text with appropriate color.
func StatusIndicator(status string) string {
	style := StatusStyle(status)
	dot := style.Render("●")
	text := style.Render(status)
	return dot + " " + text
}

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}

// --- Layout helpers ---

// AppFrame returns the full-window frame style with padding.
func AppFrame(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(height)
}

// CenterText centers text horizontally within the given width.
func CenterText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}
