package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the admin API session",
		Long: `Manage the admin API session.

Credentials are stored in the OS keychain. Sessions expire server-side;
use refresh to extend one, or login to start over.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(WhoamiCommand())
	cmd.AddCommand(RefreshCommand())
	cmd.AddCommand(PasswdCommand())
	cmd.AddCommand(UpdateCommand())

	return cmd
}
