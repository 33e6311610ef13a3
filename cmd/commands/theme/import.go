package theme

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
)

func ImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a theme from JSON",
		Long: `Import a theme record from a JSON file, or from stdin when no
file is given. The record must contain mode, primary_color and
border_radius; anything malformed is rejected without touching the
stored theme.

Examples:
  sassmon theme import team-theme.json
  sassmon theme export | ssh ops-box sassmon theme import`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			var raw []byte
			if len(args) == 1 {
				raw, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read theme file: %w", err)
				}
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read theme from stdin: %w", err)
				}
			}

			if !a.Theme.Import(string(raw)) {
				return fmt.Errorf("invalid theme record: expected JSON with mode, primary_color and border_radius")
			}

			cfg := a.Theme.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "Theme imported: %s mode, primary color %s.\n", cfg.Mode, cfg.PrimaryColor)
			return nil
		},
		SilenceUsage: true,
	}
}
