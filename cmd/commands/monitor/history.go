package monitor

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/services/monitoring"
	"sassmon/internal/tui"
)

func HistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Chart a metric's history",
		Long: `Open a full-screen chart of one metric over time.

Press tab to cycle the time range, r to refresh, q to quit.

Examples:
  sassmon monitor history --database-name analytics-1 --metric-type cpu_usage
  sassmon monitor history --metric-type memory_usage --hours 72`,
		RunE:         runHistory,
		SilenceUsage: true,
	}

	cmd.Flags().String("database-type", "", "Database type (postgresql, clickhouse, redis)")
	cmd.Flags().String("database-name", "", "Database name")
	cmd.Flags().String("metric-type", "", "Metric type [required]")
	cmd.Flags().Int("hours", 24, "Initial time range in hours")

	cmd.MarkFlagRequired("metric-type")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	hours, _ := cmd.Flags().GetInt("hours")
	if hours <= 0 {
		return fmt.Errorf("hours must be greater than 0")
	}

	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	filter := monitoring.MetricFilter{}
	filter.DatabaseType, _ = cmd.Flags().GetString("database-type")
	filter.DatabaseName, _ = cmd.Flags().GetString("database-name")
	filter.MetricType, _ = cmd.Flags().GetString("metric-type")

	return tui.RunMetricsHistory(monitoring.NewService(a.Client), a.Theme, filter, hours)
}
