package theme

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

func ShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active theme",
		Long: `Show the active theme record.

Example:
  sassmon theme show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			cfg := a.Theme.Current()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mode:          %s\n", cfg.Mode)
			fmt.Fprintf(out, "Primary color: %s\n", cfg.PrimaryColor)
			fmt.Fprintf(out, "Border radius: %d\n", cfg.BorderRadius)
			return nil
		},
		SilenceUsage: true,
	}
}
