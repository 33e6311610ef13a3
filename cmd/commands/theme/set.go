package theme

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/theme"
	"sassmon/internal/util"
)

func SetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a theme property",
		Long: `Set a single theme property, preserving the rest of the record.

Keys:
  mode           light or dark
  primary-color  hex accent color, e.g. #1890ff
  border-radius  non-negative integer

Examples:
  sassmon theme set mode dark
  sassmon theme set primary-color "#722ed1"
  sassmon theme set border-radius 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			key, value := util.NormalizeKey(args[0]), args[1]
			switch key {
			case "mode":
				mode := theme.Mode(value)
				if !mode.Valid() {
					return fmt.Errorf("invalid mode %q: must be light or dark", value)
				}
				a.Theme.SetMode(mode)
			case "primary-color":
				if err := util.ValidateHexColor(value); err != nil {
					return err
				}
				a.Theme.SetPrimaryColor(value)
			case "border-radius":
				radius, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid border radius %q: must be an integer", value)
				}
				if err := util.ValidateBorderRadius(radius); err != nil {
					return err
				}
				a.Theme.SetBorderRadius(radius)
			default:
				return fmt.Errorf("unknown theme key %q: must be mode, primary-color or border-radius", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", key, value)
			return nil
		},
		SilenceUsage: true,
	}
}
