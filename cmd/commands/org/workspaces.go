package org

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/services/organization"
)

func WorkspacesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "workspaces <org-id>",
		Short: "List an organization's workspaces",
		Long: `List the workspaces belonging to one organization.

Example:
  sassmon org workspaces org-42`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			svc := organization.NewService(a.Client)
			workspaces, err := svc.Workspaces(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(workspaces) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workspaces found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tCREATED")
			fmt.Fprintln(w, "--\t----\t-------\t-------")
			for _, ws := range workspaces {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					ws.ID,
					ansi.Truncate(ws.Name, 40, "…"),
					ws.MemberCount,
					ws.CreatedAt.Local().Format("2006-01-02"),
				)
			}
			w.Flush()
			return nil
		},
	}
}
