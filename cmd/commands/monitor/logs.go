package monitor

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/api"
	"sassmon/internal/app"
	"sassmon/internal/services/monitoring"
	"sassmon/internal/tui/styles"
)

func LogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show monitoring logs",
		Long: `Show the platform's monitoring log stream, newest first.

Examples:
  sassmon monitor logs
  sassmon monitor logs --level error
  sassmon monitor logs --source metrics-collector --limit 100`,
		RunE:         runLogs,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 50, "Number of entries to display")
	cmd.Flags().String("level", "", "Filter by log level (debug, info, warning, error)")
	cmd.Flags().String("source", "", "Filter by source component")
	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return cmd
}

func runLogs(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	filter := monitoring.LogFilter{}
	filter.Level, _ = cmd.Flags().GetString("level")
	filter.Source, _ = cmd.Flags().GetString("source")

	svc := monitoring.NewService(a.Client)
	logs, total, err := svc.Logs(cmd.Context(),
		api.PageParams{Page: 1, PageSize: limit}, filter)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(logs)
	}
	if output != "text" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(logs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No log entries found.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, entry := range logs {
		level := styles.StatusStyle(entry.LogLevel).Render(fmt.Sprintf("%-7s", entry.LogLevel))
		fmt.Fprintf(out, "%s %s [%s] %s\n",
			entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			level,
			entry.Source,
			entry.Message,
		)
	}
	fmt.Fprintf(out, "\nShowing %d of %d entries\n", len(logs), total)
	return nil
}
