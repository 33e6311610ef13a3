package auth

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	authsvc "sassmon/internal/services/auth"
)

func StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session status",
		Long: `Show whether a session is stored, still accepted by the server,
and when it expires.

Example:
  sassmon auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()

			if !a.Session.HasToken() {
				fmt.Fprintln(out, "Not signed in.")
				return nil
			}

			if !a.Session.IsAuthenticated() {
				fmt.Fprintln(out, "Session expired. Run `sassmon auth login` to sign in again.")
				return nil
			}

			// A locally-valid token can still be revoked server-side,
			// so confirm it before reporting the session as good. A
			// rejected session has already been purged here.
			svc := authsvc.NewService(a.Client, a.Logger)
			user, err := svc.InitializeAuth(cmd.Context())
			if err != nil {
				return err
			}
			if user == nil {
				fmt.Fprintln(out, "Session rejected by the server. Run `sassmon auth login` to sign in again.")
				return nil
			}

			fmt.Fprintln(out, "Signed in.")
			fmt.Fprintf(out, "User:    %s (%s)\n", user.Username, user.Role)
			if expiresAt, ok := a.Session.ExpiresAt(); ok {
				fmt.Fprintf(out, "Expires: %s", expiresAt.Local().Format(time.RFC1123))
				if a.Session.IsTokenExpiringSoon() {
					fmt.Fprint(out, "  (expiring soon, run `sassmon auth refresh`)")
				}
				fmt.Fprintln(out)
			}
			return nil
		},
		SilenceUsage: true,
	}
}
