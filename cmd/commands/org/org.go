package org

import (
	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

// NewCommand returns the "org" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Inspect platform organizations",
		Long: `Inspect the organizations (tenants) of the monitored platform.

All org commands require a session. Apart from remind, which triggers
an expiry reminder email, they are read-only.`,
		PersistentPreRunE: app.RequireSession,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(UsersCommand())
	cmd.AddCommand(WorkspacesCommand())
	cmd.AddCommand(SubsCommand())
	cmd.AddCommand(OverviewCommand())
	cmd.AddCommand(UsageCommand())
	cmd.AddCommand(RemindCommand())

	return cmd
}
