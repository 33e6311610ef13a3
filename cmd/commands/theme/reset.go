package theme

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

func ResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the theme to defaults",
		Long: `Replace the stored theme with the default record.

Example:
  sassmon theme reset`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			a.Theme.ResetToDefault()
			fmt.Fprintln(cmd.OutOrStdout(), "Theme reset to defaults.")
			return nil
		},
		SilenceUsage: true,
	}
}
