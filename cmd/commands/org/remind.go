package org

import (
	"fmt"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	"sassmon/internal/auditlog"
	"sassmon/internal/services/organization"
)

func RemindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remind <org-id>",
		Short: "Send a subscription expiry reminder",
		Long: `Ask the platform to email an organization's owner about its
expiring subscription.

Example:
  sassmon org remind org-42`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			svc := organization.NewService(a.Client)

			o, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := svc.SendExpiryReminder(cmd.Context(), o.ID); err != nil {
				return err
			}

			cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
				Endpoint:     fmt.Sprintf("/organizations/%s/send-expiry-reminder", o.ID),
				ResourceType: "organization",
				ResourceID:   o.ID,
				ResourceName: o.Name,
			}))

			fmt.Fprintf(cmd.OutOrStdout(), "Expiry reminder sent for %s (%s)\n", o.Name, o.ID)
			return nil
		},
	}
}
