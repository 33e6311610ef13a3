package org

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/services/dashboard"
)

func UsageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage <org-id>",
		Short: "Show an organization's resource usage",
		Long: `Show one organization's resource usage over a time window,
broken down by database tier.

Examples:
  sassmon org usage org-42
  sassmon org usage org-42 --hours 72
  sassmon org usage org-42 -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUsage,
		SilenceUsage: true,
	}

	cmd.Flags().Int("hours", 24, "Time window in hours")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runUsage(cmd *cobra.Command, args []string) error {
	hours, _ := cmd.Flags().GetInt("hours")
	if hours <= 0 {
		return fmt.Errorf("hours must be greater than 0")
	}

	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := dashboard.NewService(a.Client)
	usage, err := svc.OrganizationUsage(cmd.Context(), args[0], hours)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(usage)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Organization: %s\n", usage.OrganizationID)
	fmt.Fprintf(out, "Window:       %s to %s (%dh)\n",
		time.Unix(usage.Period.StartTime, 0).Local().Format("2006-01-02 15:04"),
		time.Unix(usage.Period.EndTime, 0).Local().Format("2006-01-02 15:04"),
		usage.Period.Hours,
	)

	if len(usage.UsageByDatabase) == 0 {
		fmt.Fprintln(out, "\nNo usage recorded in this window.")
		return nil
	}

	tiers := make([]string, 0, len(usage.UsageByDatabase))
	for tier := range usage.UsageByDatabase {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)

	for _, tier := range tiers {
		fmt.Fprintf(out, "\n%s:\n", tier)
		byMetric := usage.UsageByDatabase[tier]

		metrics := make([]string, 0, len(byMetric))
		for metric := range byMetric {
			metrics = append(metrics, metric)
		}
		sort.Strings(metrics)

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  METRIC\tSAMPLES\tLATEST")
		for _, metric := range metrics {
			samples := byMetric[metric]
			latest := "-"
			if len(samples) > 0 {
				last := samples[len(samples)-1]
				latest = fmt.Sprintf("%.2f %s", last.MetricValue, last.Unit)
			}
			fmt.Fprintf(w, "  %s\t%d\t%s\n", metric, len(samples), latest)
		}
		w.Flush()
	}
	return nil
}
