package user

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"sassmon/internal/api"
	"sassmon/internal/app"
	"sassmon/internal/services/user"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List platform users",
		Long: `List platform users with their membership counts.

Examples:
  sassmon user list
  sassmon user list --search carol
  sassmon user list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("page", 1, "Page to display")
	cmd.Flags().Int("page-size", 0, "Rows per page (defaults to the configured page size)")
	cmd.Flags().String("search", "", "Filter by username or email")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	search, _ := cmd.Flags().GetString("search")
	output, _ := cmd.Flags().GetString("output")

	if pageSize <= 0 {
		pageSize = a.Config.ResolvedPageSize()
	}

	svc := user.NewService(a.Client)
	result, err := svc.List(cmd.Context(), api.PageParams{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	})
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(result.Data) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tPROVIDER\tORGS\tWORKSPACES\tSUBS\tJOINED")
	fmt.Fprintln(w, "--\t--------\t-----\t--------\t----\t----------\t----\t------")
	for _, u := range result.Data {
		email := u.Email
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			u.ID,
			ansi.Truncate(u.Username, 24, "…"),
			ansi.Truncate(email, 32, "…"),
			u.OAuthProvider,
			u.OrganizationCount,
			u.WorkspaceCount,
			u.SubscriptionCount,
			u.CreatedAt.Local().Format("2006-01-02"),
		)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d users)\n",
		result.Page, result.TotalPages, result.Total)
	return nil
}
