package org

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/services/organization"
)

func UsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users <org-id>",
		Short: "List an organization's members",
		Long: `List the members of one organization.

Example:
  sassmon org users org-42`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			svc := organization.NewService(a.Client)
			members, err := svc.Users(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No members found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "USER ID\tUSERNAME\tEMAIL\tROLE\tJOINED")
			fmt.Fprintln(w, "-------\t--------\t-----\t----\t------")
			for _, m := range members {
				role := m.Role
				if role == "" {
					role = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					m.UserID,
					m.Username,
					m.Email,
					role,
					m.JoinedAt.Local().Format("2006-01-02"),
				)
			}
			w.Flush()
			return nil
		},
	}
}
