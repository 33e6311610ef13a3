package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/auditlog"
	"sassmon/internal/services/plan"
)

func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <plan-id>",
		Short: "Update a subscription plan",
		Long: `Update an existing plan. Only the flags you pass are changed;
limits and features, when given, replace the stored set.

Examples:
  sassmon plan update plan-basic --monthly 12.99
  sassmon plan update plan-basic --active=false
  sassmon plan update plan-basic --limit max_workspaces=5 --limit max_storage_gb=20`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	cmd.Flags().String("tier", "", "New tier name")
	cmd.Flags().Float64("monthly", 0, "New monthly price")
	cmd.Flags().Float64("quarterly", 0, "New quarterly price")
	cmd.Flags().Float64("yearly", 0, "New yearly price")
	cmd.Flags().StringSlice("limit", nil, "Replacement limit as name=value (repeatable)")
	cmd.Flags().StringSlice("feature", nil, "Replacement feature (repeatable)")
	cmd.Flags().String("target-users", "", "New intended audience")
	cmd.Flags().String("upgrade-path", "", "New suggested upgrade tier")
	cmd.Flags().Bool("active", false, "Whether the plan is offered to new subscribers")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var req plan.UpdateRequest

	// Unchanged flags stay nil so the backend leaves those columns alone.
	if cmd.Flags().Changed("tier") {
		v, _ := cmd.Flags().GetString("tier")
		req.TierName = &v
	}
	if cmd.Flags().Changed("monthly") {
		v, _ := cmd.Flags().GetFloat64("monthly")
		req.PricingMonthly = &v
	}
	if cmd.Flags().Changed("quarterly") {
		v, _ := cmd.Flags().GetFloat64("quarterly")
		req.PricingQuarterly = &v
	}
	if cmd.Flags().Changed("yearly") {
		v, _ := cmd.Flags().GetFloat64("yearly")
		req.PricingYearly = &v
	}
	if cmd.Flags().Changed("target-users") {
		v, _ := cmd.Flags().GetString("target-users")
		req.TargetUsers = &v
	}
	if cmd.Flags().Changed("upgrade-path") {
		v, _ := cmd.Flags().GetString("upgrade-path")
		req.UpgradePath = &v
	}
	if cmd.Flags().Changed("active") {
		v, _ := cmd.Flags().GetBool("active")
		req.IsActive = &v
	}
	if cmd.Flags().Changed("limit") {
		pairs, _ := cmd.Flags().GetStringSlice("limit")
		limits, err := parseLimitPairs(pairs)
		if err != nil {
			return err
		}
		req.Limits = limits
	}
	if cmd.Flags().Changed("feature") {
		features, _ := cmd.Flags().GetStringSlice("feature")
		req.Features = features
	}

	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := newPlanService(a)
	updated, err := svc.Update(cmd.Context(), args[0], req)
	if err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Endpoint:     "/subscription-plans/" + args[0],
		ResourceType: "plan",
		ResourceID:   updated.ID,
		ResourceName: updated.TierName,
	}))

	fmt.Fprintf(cmd.OutOrStdout(), "Updated plan %s (%s, $%.2f/month)\n",
		updated.ID, updated.TierName, updated.PricingMonthly)
	return nil
}
