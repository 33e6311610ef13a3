package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"sassmon/internal/app"
	authsvc "sassmon/internal/services/auth"
)

func PasswdCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		Long: `Change the signed-in administrator's password.

Both passwords are prompted interactively unless given as flags.

Examples:
  sassmon auth passwd
  sassmon auth passwd --old-password ... --new-password ...`,
		RunE:         runPasswd,
		SilenceUsage: true,
	}

	cmd.Flags().String("old-password", "", "Current password (prompted when omitted)")
	cmd.Flags().String("new-password", "", "New password (prompted when omitted)")

	return cmd
}

func runPasswd(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.Session.HasToken() {
		return fmt.Errorf("not signed in: run `sassmon auth login` first")
	}

	oldPassword, _ := cmd.Flags().GetString("old-password")
	newPassword, _ := cmd.Flags().GetString("new-password")

	accessible := os.Getenv("ACCESSIBLE") != ""

	var fields []huh.Field
	if oldPassword == "" {
		fields = append(fields, huh.NewInput().
			Title("Current password").
			EchoMode(huh.EchoModePassword).
			Value(&oldPassword))
	}
	if newPassword == "" {
		fields = append(fields, huh.NewInput().
			Title("New password").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if len(s) < 8 {
					return fmt.Errorf("must be at least 8 characters")
				}
				return nil
			}).
			Value(&newPassword))
	}
	if len(fields) > 0 {
		form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(accessible)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Password change cancelled.")
				return nil
			}
			return err
		}
	}

	svc := authsvc.NewService(a.Client, a.Logger)
	var changeErr error
	spinErr := spinner.New().
		Title("Changing password...").
		Accessible(accessible).
		Output(cmd.ErrOrStderr()).
		ActionWithErr(func(ctx context.Context) error {
			changeErr = svc.ChangePassword(ctx, oldPassword, newPassword)
			return changeErr
		}).
		Run()
	if spinErr != nil && changeErr == nil {
		changeErr = spinErr
	}
	if changeErr != nil {
		return changeErr
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
	return nil
}
