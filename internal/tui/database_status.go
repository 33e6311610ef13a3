package tui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sassmon/internal/domain"
	"sassmon/internal/retry"
	"sassmon/internal/services/monitoring"
	"sassmon/internal/theme"
	"sassmon/internal/tui/components"
	"sassmon/internal/tui/styles"
)

// themeChangedMsg is delivered into a running program when another
// process rewrites the theme file. The watcher has already applied the
// fresh record to the scope; the handler re-syncs the style package on
// the event loop and the next render picks it up.
type themeChangedMsg struct {
	scope *theme.Scope
}

// watchTheme subscribes a running program to cross-process theme
// changes. The returned stop function releases the watcher; a watch
// that cannot start is logged as a degraded view, not a failure.
func watchTheme(themes *theme.Manager, p *tea.Program) func() {
	if themes == nil {
		return func() {}
	}
	scope := themes.Scope()
	stop, err := themes.Watch(func(theme.Config) {
		p.Send(themeChangedMsg{scope: scope})
	})
	if err != nil {
		return func() {}
	}
	return stop
}

// liveViewRetry keeps refreshes snappy: transient failures get two
// quick re-attempts before the view shows an error.
var liveViewRetry = retry.Config{
	MaxRetries: 2,
	BaseDelay:  500 * time.Millisecond,
	MaxDelay:   2 * time.Second,
}

// --- Messages ---

type dbStatusLoadedMsg struct {
	status *domain.DatabaseStatus
}

type dbStatusErrorMsg struct {
	err error
}

// --- Database status model ---

type dbStatusModel struct {
	service *monitoring.Service

	status      *domain.DatabaseStatus
	lastRefresh time.Time

	width  int
	height int

	loading bool
	spinner spinner.Model
	err     error
}

// RunDatabaseStatus starts the full-window database status view. The
// view follows theme changes made from other terminals while it runs.
func RunDatabaseStatus(svc *monitoring.Service, themes *theme.Manager) error {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	m := dbStatusModel{
		service: svc,
		loading: true,
		spinner: s,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	stop := watchTheme(themes, p)
	defer stop()
	_, err := p.Run()
	return err
}

func (m dbStatusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadStatusCmd())
}

func (m dbStatusModel) loadStatusCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		status, err := retry.DoValue(ctx, liveViewRetry, retry.IsRetryable, func() (*domain.DatabaseStatus, error) {
			return m.service.DatabaseStatus(ctx)
		})
		if err != nil {
			return dbStatusErrorMsg{err}
		}
		return dbStatusLoadedMsg{status}
	}
}

func (m dbStatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.loadStatusCmd())
		}
		return m, nil

	case dbStatusLoadedMsg:
		m.loading = false
		m.status = msg.status
		m.lastRefresh = time.Now()
		return m, nil

	case dbStatusErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case themeChangedMsg:
		styles.Sync(msg.scope)
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m dbStatusModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "database status", "")
	footerBindings := []components.KeyBinding{
		{Key: "r", Desc: "refresh"},
		{Key: "q", Desc: "quit"},
	}
	footer := components.Footer(m.width, footerBindings)

	statusBar := ""
	if !m.lastRefresh.IsZero() && !m.loading {
		statusBar = components.StatusBar(m.width,
			"refreshed "+m.lastRefresh.Format("15:04:05"), false)
	}

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	if statusBar == "" {
		statusH = 0
	}
	contentH := m.height - headerH - footerH - statusH
	if contentH < 1 {
		contentH = 1
	}

	content := m.renderContent(contentH)

	if statusBar == "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar, footer)
}

func (m dbStatusModel) renderContent(height int) string {
	if m.loading {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s Checking databases...", m.spinner.View()),
		)
	}

	if m.err != nil {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.ErrorText.Render(m.err.Error()),
		)
	}

	if m.status == nil {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No status available."),
		)
	}

	cards := []string{
		m.renderPostgresCard(),
		m.renderRedisCard(),
	}
	cards = append(cards, m.renderClickHouseCards()...)

	combined := lipgloss.JoinVertical(lipgloss.Left, cards...)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}

const dbCardWidth = 52

func (m dbStatusModel) renderPostgresCard() string {
	pg := m.status.PostgreSQL
	rows := []string{
		styles.Label.Render("PostgreSQL  ") + styles.StatusIndicator(pg.Status),
		fmt.Sprintf("%s %d / %d",
			styles.MutedText.Render("connections"), pg.Connections, pg.MaxConnections),
		fmt.Sprintf("%s %s",
			styles.MutedText.Render("size"), formatBytes(pg.DatabaseSize)),
		fmt.Sprintf("%s %.0fms",
			styles.MutedText.Render("response"), pg.ResponseTime),
	}
	return styles.Card.Width(dbCardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m dbStatusModel) renderRedisCard() string {
	r := m.status.Redis
	rows := []string{
		styles.Label.Render("Redis  ") + styles.StatusIndicator(r.Status),
		fmt.Sprintf("%s %s / %s",
			styles.MutedText.Render("memory"), formatBytes(r.UsedMemory), formatBytes(r.MaxMemory)),
		fmt.Sprintf("%s %d",
			styles.MutedText.Render("clients"), r.ConnectedClients),
		fmt.Sprintf("%s %.0fms",
			styles.MutedText.Render("response"), r.ResponseTime),
	}
	return styles.Card.Width(dbCardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m dbStatusModel) renderClickHouseCards() []string {
	names := make([]string, 0, len(m.status.ClickHouse))
	for name := range m.status.ClickHouse {
		names = append(names, name)
	}
	sort.Strings(names)

	cards := make([]string, 0, len(names))
	for _, name := range names {
		ch := m.status.ClickHouse[name]
		rows := []string{
			styles.Label.Render("ClickHouse "+name+"  ") + styles.StatusIndicator(ch.Status),
			fmt.Sprintf("%s %d tables, %d rows",
				styles.MutedText.Render("data"), ch.TableCount, ch.RowCount),
			fmt.Sprintf("%s %s",
				styles.MutedText.Render("size"), formatBytes(ch.DatabaseSize)),
			fmt.Sprintf("%s %.0fms",
				styles.MutedText.Render("response"), ch.ResponseTime),
		}
		cards = append(cards, styles.Card.Width(dbCardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}
	return cards
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
