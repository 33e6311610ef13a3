package auth

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	authsvc "sassmon/internal/services/auth"
)

func RefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Extend the current session",
		Long: `Exchange the stored refresh token for a new access token.

Example:
  sassmon auth refresh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := authsvc.NewService(a.Client, a.Logger).RefreshToken(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Session refreshed.")
			if expiresAt, ok := a.Session.ExpiresAt(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Expires: %s\n", expiresAt.Local().Format(time.RFC1123))
			}
			return nil
		},
		SilenceUsage: true,
	}
}
