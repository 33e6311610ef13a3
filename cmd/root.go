package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sassmon/cmd/commands/audit"
	"sassmon/cmd/commands/auth"
	cfgcmd "sassmon/cmd/commands/config"
	"sassmon/cmd/commands/monitor"
	"sassmon/cmd/commands/org"
	"sassmon/cmd/commands/plan"
	themecmd "sassmon/cmd/commands/theme"
	"sassmon/cmd/commands/user"
	"sassmon/internal/auditlog"
	"sassmon/internal/config"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "sassmon",
		Short: "An operator console for the SaaS admin platform",
		Long: `sassmon is a command-line console for platform operators. It talks to
the admin API to inspect tenants, users, and subscription plans, watch
database health and resource metrics, and manage alerting rules.

Quick start:
  sassmon auth login               # Sign in to the admin API
  sassmon org list                 # List tenant organizations
  sassmon monitor status           # Full-screen database health view
  sassmon theme toggle             # Switch between light and dark`,
	}

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(themecmd.NewCommand())
	cmd.AddCommand(org.NewCommand())
	cmd.AddCommand(user.NewCommand())
	cmd.AddCommand(plan.NewCommand())
	cmd.AddCommand(monitor.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	config.LoadEnv()

	var root = rootCmd()
	start := time.Now()
	err := root.Execute()
	recordAudit(root, err, start)
	if err != nil {
		os.Exit(1)
	}
}

// recordAudit writes a best-effort audit entry for the executed
// command. Errors opening the repository or saving the entry are
// silently discarded so the audit trail can never break the CLI.
func recordAudit(root *cobra.Command, execErr error, start time.Time) {
	target, _, err := root.Find(os.Args[1:])
	if err != nil || target == root {
		return
	}
	// Reading local audit history should not itself generate entries.
	if strings.HasPrefix(target.CommandPath(), "sassmon audit") {
		return
	}

	repo, openErr := auditlog.Open()
	if openErr != nil {
		return
	}
	defer repo.Close()

	meta := auditlog.MetadataFromContext(target.Context())
	entry := &auditlog.AuditEntry{
		Timestamp:    start.UTC(),
		Command:      target.CommandPath(),
		Args:         strings.Join(auditlog.SanitizeArgs(os.Args[1:]), " "),
		Endpoint:     meta.Endpoint,
		ResourceType: meta.ResourceType,
		ResourceID:   meta.ResourceID,
		ResourceName: meta.ResourceName,
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if execErr != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = execErr.Error()
	} else {
		entry.Outcome = auditlog.OutcomeSuccess
	}
	_ = repo.Save(entry)
}
