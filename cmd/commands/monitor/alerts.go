package monitor

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"sassmon/internal/api"
	"sassmon/internal/app"
	"sassmon/internal/auditlog"
	"sassmon/internal/services/monitoring"
)

func AlertsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Manage alert rules",
		Long: `List and manage the platform's alert rules.

Examples:
  sassmon monitor alerts list
  sassmon monitor alerts create --name "High CPU" --metric cpu_usage \
    --operator gt --threshold 90 --severity critical
  sassmon monitor alerts disable alrt-3`,
	}

	cmd.AddCommand(alertsListCommand())
	cmd.AddCommand(alertsCreateCommand())
	cmd.AddCommand(alertsEnableCommand())
	cmd.AddCommand(alertsDisableCommand())
	cmd.AddCommand(alertsDeleteCommand())

	return cmd
}

func alertsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List alert rules",
		RunE:         runAlertsList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("page", 1, "Page to display")
	cmd.Flags().Int("page-size", 0, "Rows per page (defaults to the configured page size)")
	cmd.Flags().Bool("enabled", false, "Show only enabled rules")
	cmd.Flags().Bool("disabled", false, "Show only disabled rules")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runAlertsList(cmd *cobra.Command, args []string) error {
	onlyEnabled, _ := cmd.Flags().GetBool("enabled")
	onlyDisabled, _ := cmd.Flags().GetBool("disabled")
	if onlyEnabled && onlyDisabled {
		return fmt.Errorf("--enabled and --disabled are mutually exclusive")
	}

	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	output, _ := cmd.Flags().GetString("output")
	if pageSize <= 0 {
		pageSize = a.Config.ResolvedPageSize()
	}

	var enabled *bool
	if onlyEnabled {
		v := true
		enabled = &v
	}
	if onlyDisabled {
		v := false
		enabled = &v
	}

	svc := monitoring.NewService(a.Client)
	alerts, total, err := svc.Alerts(cmd.Context(),
		api.PageParams{Page: page, PageSize: pageSize}, enabled)
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(alerts)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(alerts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No alert rules found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCONDITION\tSEVERITY\tENABLED")
	fmt.Fprintln(w, "--\t----\t---------\t--------\t-------")
	for _, alert := range alerts {
		enabledStr := "no"
		if alert.Enabled {
			enabledStr = "yes"
		}
		condition := fmt.Sprintf("%s %s %.1f for %ds",
			alert.MetricName, alert.Operator, alert.Threshold, alert.Duration)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			alert.ID,
			ansi.Truncate(alert.Name, 28, "…"),
			condition,
			alert.Severity,
			enabledStr,
		)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d alert rules total\n", total)
	return nil
}

func alertsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Create an alert rule",
		RunE:         runAlertsCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("name", "", "Rule name [required]")
	cmd.Flags().String("description", "", "Rule description")
	cmd.Flags().String("rule-type", "threshold", "Rule type")
	cmd.Flags().String("target-type", "database", "Target type")
	cmd.Flags().String("target-name", "", "Target name (empty matches all targets)")
	cmd.Flags().String("metric", "", "Metric name to watch [required]")
	cmd.Flags().String("operator", "gt", "Comparison operator (gt, gte, lt, lte, eq)")
	cmd.Flags().Float64("threshold", 0, "Trigger threshold [required]")
	cmd.Flags().Int("duration", 300, "Seconds the condition must hold before firing")
	cmd.Flags().String("severity", "warning", "Severity (info, warning, critical)")
	cmd.Flags().Bool("enabled", true, "Enable the rule immediately")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("metric")
	cmd.MarkFlagRequired("threshold")

	return cmd
}

func runAlertsCreate(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	var req monitoring.AlertRequest
	req.Name, _ = cmd.Flags().GetString("name")
	req.Description, _ = cmd.Flags().GetString("description")
	req.RuleType, _ = cmd.Flags().GetString("rule-type")
	req.TargetType, _ = cmd.Flags().GetString("target-type")
	req.TargetName, _ = cmd.Flags().GetString("target-name")
	req.MetricName, _ = cmd.Flags().GetString("metric")
	req.Operator, _ = cmd.Flags().GetString("operator")
	req.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	req.Duration, _ = cmd.Flags().GetInt("duration")
	req.Severity, _ = cmd.Flags().GetString("severity")
	req.Enabled, _ = cmd.Flags().GetBool("enabled")

	svc := monitoring.NewService(a.Client)
	created, err := svc.CreateAlert(cmd.Context(), req)
	if err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Endpoint:     "/monitoring/alerts",
		ResourceType: "alert",
		ResourceID:   created.ID,
		ResourceName: created.Name,
	}))

	fmt.Fprintf(cmd.OutOrStdout(), "Created alert rule %s (%s)\n", created.ID, created.Name)
	return nil
}

func alertsEnableCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "enable <alert-id>",
		Short:        "Enable an alert rule",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setAlertEnabled(cmd, args[0], true)
		},
	}
}

func alertsDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "disable <alert-id>",
		Short:        "Disable an alert rule",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setAlertEnabled(cmd, args[0], false)
		},
	}
}

func setAlertEnabled(cmd *cobra.Command, id string, enabled bool) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := monitoring.NewService(a.Client)
	alert, err := svc.SetAlertEnabled(cmd.Context(), id, enabled)
	if err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Endpoint:     "/monitoring/alerts/" + id,
		ResourceType: "alert",
		ResourceID:   alert.ID,
		ResourceName: alert.Name,
	}))

	state := "disabled"
	if alert.Enabled {
		state = "enabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Alert rule %s (%s) is now %s\n", alert.ID, alert.Name, state)
	return nil
}

func alertsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "delete <alert-id>",
		Short:        "Delete an alert rule",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			svc := monitoring.NewService(a.Client)
			if err := svc.DeleteAlert(cmd.Context(), args[0]); err != nil {
				return err
			}

			cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
				Endpoint:     "/monitoring/alerts/" + args[0],
				ResourceType: "alert",
				ResourceID:   args[0],
			}))

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted alert rule %s\n", args[0])
			return nil
		},
	}
}
