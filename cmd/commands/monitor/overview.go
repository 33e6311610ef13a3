package monitor

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/services/dashboard"
)

func OverviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Platform overview",
		Long: `Show the platform landing aggregate: tenant totals, database
status and the most recent metrics.

Examples:
  sassmon monitor overview
  sassmon monitor overview -o json`,
		RunE:         runOverview,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runOverview(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := dashboard.NewService(a.Client)
	overview, err := svc.Overview(cmd.Context())
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(overview)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Organizations: %d\n", overview.TotalOrganizations)
	fmt.Fprintf(out, "Users:         %d\n", overview.TotalUsers)
	fmt.Fprintf(out, "Subscriptions: %d\n", overview.TotalSubscriptions)

	printStatusMap(out, "Databases:", overview.DatabaseStatus)
	printStatusMap(out, "System health:", overview.SystemHealth)

	if len(overview.RecentMetrics) > 0 {
		fmt.Fprintln(out, "\nRecent metrics:")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  DATABASE\tMETRIC\tVALUE\tTIME")
		for _, m := range overview.RecentMetrics {
			collected := time.Unix(m.Timestamp, 0).Local().Format("15:04:05")
			fmt.Fprintf(w, "  %s\t%s\t%.2f %s\t%s\n",
				m.DatabaseName, m.MetricType, m.MetricValue, m.Unit, collected)
		}
		w.Flush()
	}
	return nil
}

func printStatusMap(out io.Writer, title string, statuses map[string]string) {
	if len(statuses) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", title)
	names := make([]string, 0, len(statuses))
	for name := range statuses {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-16s %s\n", name, statuses[name])
	}
}
