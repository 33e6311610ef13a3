package theme

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

func ToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Toggle between light and dark mode",
		Long: `Flip the theme between light and dark mode.

Example:
  sassmon theme toggle`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			mode := a.Theme.ToggleMode()
			fmt.Fprintf(cmd.OutOrStdout(), "Theme mode set to %s.\n", mode)
			return nil
		},
		SilenceUsage: true,
	}
}
