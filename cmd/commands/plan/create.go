package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/auditlog"
	"sassmon/internal/domain"
	"sassmon/internal/services/plan"
)

func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription plan",
		Long: `Create a new subscription plan.

Limits are given as name=value pairs with integer values.

Examples:
  sassmon plan create --tier starter --monthly 9.99 --yearly 99 \
    --limit max_workspaces=3 --limit max_storage_gb=10 \
    --feature "Email support" --active
  sassmon plan create --tier enterprise --monthly 499 --custom`,
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("tier", "", "Tier name [required]")
	cmd.Flags().Float64("monthly", 0, "Monthly price")
	cmd.Flags().Float64("quarterly", 0, "Quarterly price")
	cmd.Flags().Float64("yearly", 0, "Yearly price")
	cmd.Flags().StringSlice("limit", nil, "Resource limit as name=value (repeatable)")
	cmd.Flags().StringSlice("feature", nil, "Feature description (repeatable)")
	cmd.Flags().String("target-users", "", "Intended audience")
	cmd.Flags().String("upgrade-path", "", "Suggested upgrade tier")
	cmd.Flags().Bool("custom", false, "Mark as a custom negotiated plan")
	cmd.Flags().Bool("active", false, "Offer the plan to new subscribers immediately")

	cmd.MarkFlagRequired("tier")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	tier, _ := cmd.Flags().GetString("tier")
	monthly, _ := cmd.Flags().GetFloat64("monthly")
	quarterly, _ := cmd.Flags().GetFloat64("quarterly")
	yearly, _ := cmd.Flags().GetFloat64("yearly")
	limitPairs, _ := cmd.Flags().GetStringSlice("limit")
	features, _ := cmd.Flags().GetStringSlice("feature")
	targetUsers, _ := cmd.Flags().GetString("target-users")
	upgradePath, _ := cmd.Flags().GetString("upgrade-path")
	custom, _ := cmd.Flags().GetBool("custom")
	active, _ := cmd.Flags().GetBool("active")

	limits, err := parseLimitPairs(limitPairs)
	if err != nil {
		return err
	}

	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := newPlanService(a)
	created, err := svc.Create(cmd.Context(), plan.CreateRequest{
		TierName:         tier,
		PricingMonthly:   monthly,
		PricingQuarterly: quarterly,
		PricingYearly:    yearly,
		Limits:           limits,
		Features:         features,
		TargetUsers:      targetUsers,
		UpgradePath:      upgradePath,
		IsCustom:         custom,
		IsActive:         active,
	})
	if err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Endpoint:     "/subscription-plans",
		ResourceType: "plan",
		ResourceID:   created.ID,
		ResourceName: created.TierName,
	}))

	fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s (%s, $%.2f/month)\n",
		created.ID, created.TierName, created.PricingMonthly)
	return nil
}

func parseLimitPairs(pairs []string) (domain.PlanLimits, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	limits := make(domain.PlanLimits, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid limit %q: expected name=value", pair)
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid limit %q: value must be an integer", pair)
		}
		limits[name] = value
	}
	return limits, nil
}
