package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	authsvc "sassmon/internal/services/auth"
)

func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the administrator profile",
		Long: `Update the signed-in administrator's profile. Only the flags you
pass are changed.

Examples:
  sassmon auth update --full-name "Ada Lovelace"
  sassmon auth update --email ada@example.com`,
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	cmd.Flags().String("full-name", "", "New display name")
	cmd.Flags().String("email", "", "New email address")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	updates := map[string]any{}
	if cmd.Flags().Changed("full-name") {
		v, _ := cmd.Flags().GetString("full-name")
		updates["full_name"] = v
	}
	if cmd.Flags().Changed("email") {
		v, _ := cmd.Flags().GetString("email")
		updates["email"] = v
	}
	if len(updates) == 0 {
		return fmt.Errorf("nothing to update: pass --full-name or --email")
	}

	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.Session.HasToken() {
		return fmt.Errorf("not signed in: run `sassmon auth login` first")
	}

	svc := authsvc.NewService(a.Client, a.Logger)
	user, err := svc.UpdateProfile(cmd.Context(), updates)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profile updated for %s\n", user.Username)
	return nil
}
