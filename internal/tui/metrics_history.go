package tui

import (
	"context"
	"fmt"

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

// --- Messages ---

type historyLoadedMsg struct {
	history *domain.MetricsHistory
}

type historyErrorMsg struct {
	err error
}

// --- Metrics history model ---

// hourRanges are the selectable time windows, cycled with tab.
var hourRanges = []int{6, 24, 72, 168}

type metricsHistoryModel struct {
	service *monitoring.Service
	filter  monitoring.MetricFilter

	history  *domain.MetricsHistory
	rangeIdx int

	width  int
	height int

	loading bool
	spinner spinner.Model
	err     error
}

// RunMetricsHistory starts the full-window metrics chart view for one
// database metric. Like the status view, it follows theme changes made
// from other terminals while it runs.
func RunMetricsHistory(svc *monitoring.Service, themes *theme.Manager, filter monitoring.MetricFilter, hours int) error {
	rangeIdx := 1
	for i, h := range hourRanges {
		if h == hours {
			rangeIdx = i
		}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	m := metricsHistoryModel{
		service:  svc,
		filter:   filter,
		rangeIdx: rangeIdx,
		loading:  true,
		spinner:  s,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	stop := watchTheme(themes, p)
	defer stop()
	_, err := p.Run()
	return err
}

func (m metricsHistoryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadHistoryCmd())
}

func (m metricsHistoryModel) loadHistoryCmd() tea.Cmd {
	hours := hourRanges[m.rangeIdx]
	return func() tea.Msg {
		ctx := context.Background()
		history, err := retry.DoValue(ctx, liveViewRetry, retry.IsRetryable, func() (*domain.MetricsHistory, error) {
			return m.service.MetricsHistory(ctx, m.filter, hours)
		})
		if err != nil {
			return historyErrorMsg{err}
		}
		return historyLoadedMsg{history}
	}
}

func (m metricsHistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			return m, tea.Batch(m.spinner.Tick, m.loadHistoryCmd())
		case "tab":
			m.rangeIdx = (m.rangeIdx + 1) % len(hourRanges)
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.loadHistoryCmd())
		}
		return m, nil

	case historyLoadedMsg:
		m.loading = false
		m.history = msg.history
		return m, nil

	case historyErrorMsg:
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

func (m metricsHistoryModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	breadcrumb := fmt.Sprintf("metrics %s", m.filter.DatabaseType)
	header := components.Header(m.width, breadcrumb, fmt.Sprintf("last %dh", hourRanges[m.rangeIdx]))
	footerBindings := []components.KeyBinding{
		{Key: "tab", Desc: "time range"},
		{Key: "r", Desc: "refresh"},
		{Key: "q", Desc: "quit"},
	}
	footer := components.Footer(m.width, footerBindings)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	contentH := m.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	content := m.renderContent(contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m metricsHistoryModel) renderContent(height int) string {
	if m.loading {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s Loading metrics...", m.spinner.View()),
		)
	}

	if m.err != nil {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.ErrorText.Render(m.err.Error()),
		)
	}

	if m.history == nil || len(m.history.Data) == 0 {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No metric data for this window."),
		)
	}

	values := make([]float64, len(m.history.Data))
	for i, point := range m.history.Data {
		values[i] = point.Value
	}

	label := m.history.MetricType
	if m.history.DatabaseName != "" {
		label = m.history.DatabaseName + " " + label
	}
	suffix := ""
	if unit := m.history.Data[0].Unit; unit != "" {
		suffix = " " + unit
	}

	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chart := components.MetricsChart(label, values, chartWidth, suffix)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		chart,
	)
}
