// Package tui contains the interactive views of the sassmon CLI.
// Full-screen views are bubbletea models; short prompts use huh forms
// with huh spinners around the network calls.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"sassmon/internal/domain"
	"sassmon/internal/services/auth"
)

// ErrLoginAborted is returned when the user cancels the login form.
var ErrLoginAborted = errors.New("login aborted by user")

// RunLogin prompts for credentials and signs in through the auth
// service. Prefilled values skip their prompt fields.
func RunLogin(ctx context.Context, svc *auth.Service, username, password string) (*domain.User, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	var fields []huh.Field
	if username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&username).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("username cannot be empty")
				}
				return nil
			}))
	}
	if password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password cannot be empty")
				}
				return nil
			}))
	}

	if len(fields) > 0 {
		form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(accessible)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrLoginAborted
			}
			return nil, err
		}
	}

	var user *domain.User
	loginErr := spinner.New().
		Title("Signing in...").
		Accessible(accessible).
		Output(os.Stderr).
		ActionWithErr(func(spinCtx context.Context) error {
			var err error
			user, err = svc.Login(ctx, strings.TrimSpace(username), password)
			return err
		}).
		Run()
	if loginErr != nil {
		if errors.Is(loginErr, huh.ErrUserAborted) || errors.Is(loginErr, context.Canceled) {
			return nil, ErrLoginAborted
		}
		return nil, loginErr
	}

	return user, nil
}
