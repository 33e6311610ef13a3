package org

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"sassmon/internal/api"
	"sassmon/internal/app"
	"sassmon/internal/services/organization"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long: `List organizations with their user, subscription and workspace
counts and the current subscription lifecycle status.

Examples:
  sassmon org list
  sassmon org list --search acme
  sassmon org list --page 2 --page-size 50
  sassmon org list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("page", 1, "Page to display")
	cmd.Flags().Int("page-size", 0, "Rows per page (defaults to the configured page size)")
	cmd.Flags().String("search", "", "Filter by organization name")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	search, _ := cmd.Flags().GetString("search")
	output, _ := cmd.Flags().GetString("output")

	if pageSize <= 0 {
		pageSize = a.Config.ResolvedPageSize()
	}

	svc := organization.NewService(a.Client)
	result, err := svc.List(cmd.Context(), api.PageParams{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	})
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(result.Data) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No organizations found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUSERS\tSUBS\tWORKSPACES\tSTATUS\tEXPIRES IN")
	fmt.Fprintln(w, "--\t----\t-----\t----\t----------\t------\t----------")
	for _, org := range result.Data {
		expires := "-"
		if org.DaysUntilExpiration != nil {
			expires = fmt.Sprintf("%dd", *org.DaysUntilExpiration)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			org.ID,
			ansi.Truncate(org.Name, 32, "…"),
			org.UserCount,
			org.ActiveSubscriptionCount,
			org.WorkspaceCount,
			org.SubscriptionStatus,
			expires,
		)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d organizations)\n",
		result.Page, result.TotalPages, result.Total)
	return nil
}
