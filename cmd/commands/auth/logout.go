package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	authsvc "sassmon/internal/services/auth"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear stored credentials",
		Long: `Sign out of the admin API.

The server is notified on a best-effort basis; local credentials are
always cleared.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			authsvc.NewService(a.Client, a.Logger).Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
		SilenceUsage: true,
	}
}
