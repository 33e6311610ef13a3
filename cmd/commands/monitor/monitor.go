package monitor

import (
	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

// NewCommand returns the "monitor" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Monitor the platform",
		Long: `Inspect platform health, resource metrics, logs and alert rules.

All monitor commands require a session.`,
		PersistentPreRunE: app.RequireSession,
	}

	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(OverviewCommand())
	cmd.AddCommand(MetricsCommand())
	cmd.AddCommand(HistoryCommand())
	cmd.AddCommand(AlertsCommand())
	cmd.AddCommand(HealthCommand())
	cmd.AddCommand(LogsCommand())

	return cmd
}
