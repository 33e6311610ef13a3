package plan

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show one plan in detail",
		Long: `Show a subscription plan with its pricing, limits and features.

Examples:
  sassmon plan show plan-basic
  sassmon plan show plan-basic -o json`,
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

	svc := newPlanService(a)
	p, err := svc.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(p)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tier:      %s (%s)\n", p.TierName, p.ID)
	fmt.Fprintf(out, "Pricing:   $%.2f/month, $%.2f/quarter, $%.2f/year\n",
		p.PricingMonthly, p.PricingQuarterly, p.PricingYearly)
	fmt.Fprintf(out, "Active:    %t\n", p.IsActive)
	if p.TargetUsers != "" {
		fmt.Fprintf(out, "Audience:  %s\n", p.TargetUsers)
	}
	if p.UpgradePath != "" {
		fmt.Fprintf(out, "Upgrade:   %s\n", p.UpgradePath)
	}

	if len(p.Limits) > 0 {
		fmt.Fprintln(out, "\nLimits:")
		names := make([]string, 0, len(p.Limits))
		for name := range p.Limits {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %-24s %d\n", name, p.Limits[name])
		}
	}

	if len(p.Features) > 0 {
		fmt.Fprintln(out, "\nFeatures:")
		for _, feature := range p.Features {
			fmt.Fprintf(out, "  - %s\n", feature)
		}
	}
	return nil
}
