package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

func ActiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List active plans",
		Long: `List the plans currently offered to new subscribers.

The active catalog changes rarely, so the result is cached locally for
a few minutes. Plan mutations invalidate the cache.

Example:
  sassmon plan active`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			svc := newPlanService(a)
			plans, err := svc.Active(cmd.Context())
			if err != nil {
				return err
			}

			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No active plans.")
				return nil
			}
			printPlanTable(cmd, plans)
			return nil
		},
	}
}
