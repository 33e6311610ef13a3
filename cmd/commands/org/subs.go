package org

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sassmon/internal/api"
	"sassmon/internal/app"
	"sassmon/internal/services/organization"
)

func SubsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subs <org-id>",
		Short: "List an organization's subscriptions",
		Long: `List the subscriptions under one organization, including plan,
billing cycle and expiry.

Examples:
  sassmon org subs org-42
  sassmon org subs org-42 --page 2`,
		Args:         cobra.ExactArgs(1),
		RunE:         runSubs,
		SilenceUsage: true,
	}

	cmd.Flags().Int("page", 1, "Page to display")
	cmd.Flags().Int("page-size", 0, "Rows per page (defaults to the configured page size)")

	return cmd
}

func runSubs(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		pageSize = a.Config.ResolvedPageSize()
	}

	svc := organization.NewService(a.Client)
	result, err := svc.Subscriptions(cmd.Context(), args[0], api.PageParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	if len(result.Data) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No subscriptions found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tPLAN\tPRICE\tCYCLE\tSTATUS\tEXPIRES IN")
	fmt.Fprintln(w, "--\t----\t----\t-----\t-----\t------\t----------")
	for _, sub := range result.Data {
		expires := "-"
		if sub.DaysUntilExpiry != nil {
			expires = fmt.Sprintf("%dd", *sub.DaysUntilExpiry)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%s\t%s\t%s\n",
			sub.ID,
			sub.Username,
			sub.PlanName,
			sub.PlanPricing,
			sub.BillingCycle,
			sub.Status,
			expires,
		)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d subscriptions)\n",
		result.Page, result.TotalPages, result.Total)
	return nil
}
