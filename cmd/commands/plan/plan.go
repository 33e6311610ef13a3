package plan

import (
	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/cache"
	"sassmon/internal/services/plan"
)

// NewCommand returns the "plan" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage subscription plans",
		Long: `Manage the platform's subscription plan catalog.

All plan commands require a session.`,
		PersistentPreRunE: app.RequireSession,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(ActiveCommand())
	cmd.AddCommand(SearchCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

func newPlanService(a *app.App) *plan.Service {
	return plan.NewService(a.Client, cache.NewDefault(), a.Logger)
}
