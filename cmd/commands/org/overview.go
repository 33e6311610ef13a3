package org

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/services/dashboard"
)

func OverviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Cross-tenant monitoring rollup",
		Long: `Show the monitoring rollup across all organizations for the
last 24 hours.

Examples:
  sassmon org overview
  sassmon org overview -o json`,
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
	overview, err := svc.OrganizationOverview(cmd.Context())
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
	fmt.Fprintf(out, "Organizations: %d\n", overview.Summary.TotalOrganizations)
	fmt.Fprintf(out, "Users:         %d\n", overview.Summary.TotalUsers)
	fmt.Fprintf(out, "Workspaces:    %d\n", overview.Summary.TotalWorkspaces)
	fmt.Fprintf(out, "Subscriptions: %d\n", overview.Summary.TotalSubscriptions)
	fmt.Fprintf(out, "Updated:       %s\n",
		time.Unix(overview.UpdatedAt, 0).Local().Format(time.RFC1123))

	if len(overview.Organizations) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMETRICS")
	fmt.Fprintln(w, "--\t----\t-------")
	for _, entry := range overview.Organizations {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			entry.OrganizationID,
			ansi.Truncate(entry.OrganizationName, 32, "…"),
			summarizeMetrics(entry.Metrics),
		)
	}
	w.Flush()
	return nil
}

func summarizeMetrics(metrics map[string]dashboard.OrgMetricSample) string {
	if len(metrics) == 0 {
		return "-"
	}
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	summary := ""
	for i, name := range names {
		if i > 0 {
			summary += "  "
		}
		sample := metrics[name]
		summary += fmt.Sprintf("%s=%.1f%s", name, sample.Value, sample.Unit)
	}
	return summary
}
