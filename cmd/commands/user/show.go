package user

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sassmon/internal/api"
	"sassmon/internal/app"
	"sassmon/internal/domain"
	"sassmon/internal/services/user"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show one platform user in detail",
		Long: `Show one platform user with their organization, workspace and
subscription memberships.

Examples:
  sassmon user show usr-7
  sassmon user show usr-7 -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

// userDetail aggregates the four per-user endpoints for output.
type userDetail struct {
	User          *domain.PlatformUser      `json:"user"`
	Organizations []domain.UserOrganization `json:"organizations"`
	Workspaces    []domain.UserWorkspace    `json:"workspaces"`
	Subscriptions []domain.UserSubscription `json:"subscriptions"`
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := user.NewService(a.Client)
	id := args[0]
	params := api.PageParams{Page: 1, PageSize: a.Config.ResolvedPageSize()}

	var detail userDetail
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		u, err := svc.Get(ctx, id)
		detail.User = u
		return err
	})
	g.Go(func() error {
		orgs, err := svc.Organizations(ctx, id, params)
		detail.Organizations = orgs.Data
		return err
	})
	g.Go(func() error {
		workspaces, err := svc.Workspaces(ctx, id, params)
		detail.Workspaces = workspaces.Data
		return err
	})
	g.Go(func() error {
		subs, err := svc.Subscriptions(ctx, id, params)
		detail.Subscriptions = subs.Data
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(detail)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	out := cmd.OutOrStdout()
	u := detail.User
	fmt.Fprintf(out, "Username: %s (%s)\n", u.Username, u.ID)
	if u.Email != "" {
		fmt.Fprintf(out, "Email:    %s\n", u.Email)
	}
	fmt.Fprintf(out, "Provider: %s\n", u.OAuthProvider)
	fmt.Fprintf(out, "Joined:   %s\n", u.CreatedAt.Local().Format(time.RFC1123))

	fmt.Fprintf(out, "\nOrganizations (%d)\n", len(detail.Organizations))
	if len(detail.Organizations) > 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tNAME\tJOINED")
		for _, org := range detail.Organizations {
			fmt.Fprintf(w, "  %s\t%s\t%s\n",
				org.OrganizationID, org.OrganizationName,
				org.JoinedAt.Local().Format("2006-01-02"))
		}
		w.Flush()
	}

	fmt.Fprintf(out, "\nWorkspaces (%d)\n", len(detail.Workspaces))
	if len(detail.Workspaces) > 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tNAME\tORGANIZATION\tSTATUS")
		for _, ws := range detail.Workspaces {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				ws.WorkspaceID, ws.WorkspaceName, ws.OrganizationName, ws.UserStatus)
		}
		w.Flush()
	}

	fmt.Fprintf(out, "\nSubscriptions (%d)\n", len(detail.Subscriptions))
	if len(detail.Subscriptions) > 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tPLAN\tORGANIZATION\tSTATUS\tCYCLE\tENDS")
		for _, sub := range detail.Subscriptions {
			ends := "-"
			if sub.EndDate != nil {
				ends = sub.EndDate.Local().Format("2006-01-02")
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				sub.SubscriptionID, sub.PlanName, sub.OrganizationName,
				sub.Status, sub.BillingCycle, ends)
		}
		w.Flush()
	}
	return nil
}
