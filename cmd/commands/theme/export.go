package theme

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

func ExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the theme as JSON",
		Long: `Print the active theme record as JSON, suitable for import on
another machine.

Example:
  sassmon theme export > team-theme.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Current().Export())
			return nil
		},
		SilenceUsage: true,
	}
}
