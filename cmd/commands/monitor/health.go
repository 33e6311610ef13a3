package monitor

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/services/monitoring"
)

func HealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show component health records",
		Long: `Show the latest recorded health of every platform component.

Example:
  sassmon monitor health`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			svc := monitoring.NewService(a.Client)
			records, err := svc.SystemHealth(cmd.Context())
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No health records found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "COMPONENT\tTYPE\tSTATUS\tRESPONSE\tLAST CHECKED")
			fmt.Fprintln(w, "---------\t----\t------\t--------\t------------")
			for _, record := range records {
				response := "-"
				if record.ResponseTime > 0 {
					response = fmt.Sprintf("%.0fms", record.ResponseTime)
				}
				status := record.Status
				if record.ErrorMessage != "" {
					status = fmt.Sprintf("%s (%s)", status, record.ErrorMessage)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					record.ComponentName,
					record.ComponentType,
					status,
					response,
					record.LastCheckedAt.Local().Format("2006-01-02 15:04:05"),
				)
			}
			w.Flush()
			return nil
		},
	}
}
