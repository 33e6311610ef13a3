package plan

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/auditlog"
)

func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a subscription plan",
		Long: `Delete a plan from the catalog. Asks for confirmation unless
--yes is given.

Examples:
  sassmon plan delete plan-legacy
  sassmon plan delete plan-legacy --yes`,
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := newPlanService(a)
	id := args[0]

	p, err := svc.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete plan %q (%s)?", p.TierName, p.ID)).
				Description("Existing subscriptions keep their terms; the plan is removed from the catalog.").
				Value(&confirmed),
		)).WithAccessible(os.Getenv("ACCESSIBLE") != "")

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Deletion cancelled.")
				return nil
			}
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.ErrOrStderr(), "Deletion cancelled.")
			return nil
		}
	}

	if err := svc.Delete(cmd.Context(), id); err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Endpoint:     "/subscription-plans/" + id,
		ResourceType: "plan",
		ResourceID:   p.ID,
		ResourceName: p.TierName,
	}))

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s (%s)\n", p.ID, p.TierName)
	return nil
}
