package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/spf13/cobra"

	"sassmon/internal/app"
	authsvc "sassmon/internal/services/auth"
	"sassmon/internal/tui"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the admin API",
		Long: `Sign in to the admin API and store the session in the local keychain.

Examples:
  sassmon auth login
  sassmon auth login --username ada`,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("username", "u", "", "Username (prompted when omitted)")
	cmd.Flags().String("password", "", "Password (prompted when omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := app.New(app.OnLoginView())
	if err != nil {
		return err
	}
	defer a.Close()

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	username = strings.TrimSpace(username)

	svc := authsvc.NewService(a.Client, a.Logger)

	// Interactive terminal: huh form with a sign-in spinner.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		user, err := tui.RunLogin(cmd.Context(), svc, username, password)
		if err != nil {
			if errors.Is(err, tui.ErrLoginAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Login cancelled.")
				return nil
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Username)
		return nil
	}

	// Non-interactive fallback: flags plus a stdin password prompt.
	if username == "" {
		return fmt.Errorf("--username is required outside a terminal")
	}
	if password == "" {
		fmt.Fprint(os.Stdout, "Password: ")
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stdout)
		if err != nil {
			return err
		}
		password = string(bytes)
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	user, err := svc.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Username)
	return nil
}
