package theme

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "theme" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the terminal theme",
		Long: `View and modify the persisted terminal theme.

The theme is stored at ~/.config/sassmon/theme.json and applies to
every sassmon view. Changes take effect immediately.`,
	}

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(ToggleCommand())
	cmd.AddCommand(ResetCommand())
	cmd.AddCommand(ImportCommand())
	cmd.AddCommand(ExportCommand())

	return cmd
}
