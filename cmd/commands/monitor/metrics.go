package monitor

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sassmon/internal/api"
	"sassmon/internal/app"
	"sassmon/internal/services/monitoring"
)

func MetricsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "List collected resource metrics",
		Long: `List collected resource metrics, newest first.

Examples:
  sassmon monitor metrics
  sassmon monitor metrics --database-type clickhouse
  sassmon monitor metrics --metric-type cpu_usage --org org-42`,
		RunE:         runMetrics,
		SilenceUsage: true,
	}

	cmd.Flags().Int("page", 1, "Page to display")
	cmd.Flags().Int("page-size", 0, "Rows per page (defaults to the configured page size)")
	cmd.Flags().String("database-type", "", "Filter by database type (postgresql, clickhouse, redis)")
	cmd.Flags().String("database-name", "", "Filter by database name")
	cmd.Flags().String("metric-type", "", "Filter by metric type")
	cmd.Flags().String("org", "", "Filter by organization ID")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runMetrics(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	output, _ := cmd.Flags().GetString("output")
	if pageSize <= 0 {
		pageSize = a.Config.ResolvedPageSize()
	}

	filter := monitoring.MetricFilter{}
	filter.DatabaseType, _ = cmd.Flags().GetString("database-type")
	filter.DatabaseName, _ = cmd.Flags().GetString("database-name")
	filter.MetricType, _ = cmd.Flags().GetString("metric-type")
	filter.OrganizationID, _ = cmd.Flags().GetString("org")

	svc := monitoring.NewService(a.Client)
	metrics, total, err := svc.Metrics(cmd.Context(),
		api.PageParams{Page: page, PageSize: pageSize}, filter)
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(metrics)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(metrics) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No metrics found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATABASE\tTYPE\tMETRIC\tVALUE\tCOLLECTED")
	fmt.Fprintln(w, "--------\t----\t------\t-----\t---------")
	for _, m := range metrics {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f %s\t%s\n",
			m.DatabaseName,
			m.DatabaseType,
			m.MetricName,
			m.MetricValue,
			m.Unit,
			m.CollectedAt.Local().Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d metrics total\n", total)
	return nil
}
