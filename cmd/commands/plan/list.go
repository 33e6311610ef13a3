package plan

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sassmon/internal/api"
	"sassmon/internal/app"
	"sassmon/internal/domain"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscription plans",
		Long: `List all subscription plans in the catalog.

Examples:
  sassmon plan list
  sassmon plan list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("page", 1, "Page to display")
	cmd.Flags().Int("page-size", 0, "Rows per page (defaults to the configured page size)")
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
	output, _ := cmd.Flags().GetString("output")
	if pageSize <= 0 {
		pageSize = a.Config.ResolvedPageSize()
	}

	svc := newPlanService(a)
	result, err := svc.List(cmd.Context(), api.PageParams{Page: page, PageSize: pageSize})
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
		fmt.Fprintln(cmd.OutOrStdout(), "No plans found.")
		return nil
	}

	printPlanTable(cmd, result.Data)
	fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d plans)\n",
		result.Page, result.TotalPages, result.Total)
	return nil
}

func printPlanTable(cmd *cobra.Command, plans []domain.SubscriptionPlan) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIER\tMONTHLY\tYEARLY\tACTIVE\tFEATURES")
	fmt.Fprintln(w, "--\t----\t-------\t------\t------\t--------")
	for _, p := range plans {
		active := "no"
		if p.IsActive {
			active = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t$%.2f\t%s\t%s\n",
			p.ID,
			p.TierName,
			p.PricingMonthly,
			p.PricingYearly,
			active,
			summarizeFeatures(p.Features),
		)
	}
	w.Flush()
}

func summarizeFeatures(features []string) string {
	if len(features) == 0 {
		return "-"
	}
	if len(features) <= 3 {
		return strings.Join(features, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(features[:3], ", "), len(features)-3)
}
