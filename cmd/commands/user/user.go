package user

import (
	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

// NewCommand returns the "user" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Inspect platform users",
		Long: `Inspect the end users of the monitored platform.

All user commands are read-only and require a session.`,
		PersistentPreRunE: app.RequireSession,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}
