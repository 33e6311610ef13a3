package monitor

import (
	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/services/monitoring"
	"sassmon/internal/tui"
)

func StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Live database status view",
		Long: `Open a full-screen view of every database tier's health.

Press r to refresh, q to quit.

Example:
  sassmon monitor status`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			return tui.RunDatabaseStatus(monitoring.NewService(a.Client), a.Theme)
		},
	}
}
