package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

func SearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search plans by monthly price",
		Long: `Search plans whose monthly price falls inside a range.

Examples:
  sassmon plan search --min-price 10 --max-price 50
  sassmon plan search --max-price 20`,
		RunE:         runSearch,
		SilenceUsage: true,
	}

	cmd.Flags().Float64("min-price", 0, "Minimum monthly price")
	cmd.Flags().Float64("max-price", 0, "Maximum monthly price")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	minPrice, _ := cmd.Flags().GetFloat64("min-price")
	maxPrice, _ := cmd.Flags().GetFloat64("max-price")
	if minPrice < 0 || maxPrice < 0 {
		return fmt.Errorf("prices must be non-negative")
	}
	if maxPrice > 0 && minPrice > maxPrice {
		return fmt.Errorf("--min-price cannot exceed --max-price")
	}

	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := newPlanService(a)
	plans, err := svc.SearchByPricing(cmd.Context(), minPrice, maxPrice)
	if err != nil {
		return err
	}

	if len(plans) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No plans in that price range.")
		return nil
	}
	printPlanTable(cmd, plans)
	return nil
}
