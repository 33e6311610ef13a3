package org

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/services/dashboard"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <org-id>",
		Short: "Show one organization in detail",
		Long: `Show one organization with its user, subscription and resource
usage aggregates.

Examples:
  sassmon org show org-42
  sassmon org show org-42 -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := dashboard.NewService(a.Client)

	metrics, err := svc.OrganizationMetrics(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(metrics)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	org := metrics.Organization
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:          %s (%s)\n", org.Name, org.ID)
	if org.Description != "" {
		fmt.Fprintf(out, "Description:   %s\n", org.Description)
	}
	fmt.Fprintf(out, "Created:       %s\n", org.CreatedAt.Local().Format(time.RFC1123))
	fmt.Fprintf(out, "Status:        %s", org.SubscriptionStatus)
	if org.DaysUntilExpiration != nil {
		fmt.Fprintf(out, " (%d days left)", *org.DaysUntilExpiration)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Users:         %d total, %d active\n",
		metrics.UserStats.TotalUsers, metrics.UserStats.ActiveUsers)
	fmt.Fprintf(out, "Subscriptions: %d total, %d active\n",
		metrics.SubStats.TotalSubscriptions, metrics.SubStats.ActiveSubscriptions)
	fmt.Fprintf(out, "Revenue:       $%.2f/month\n", metrics.SubStats.MonthlyRevenue)
	fmt.Fprintf(out, "Workspaces:    %d\n", metrics.WorkspaceCount)
	fmt.Fprintf(out, "Storage:       %.1f MB\n", metrics.ResourceUsage.StorageUsageMB)
	fmt.Fprintf(out, "Queries today: %d\n", metrics.ResourceUsage.QueryCountToday)
	return nil
}
