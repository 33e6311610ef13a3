// Package app wires the shared dependencies a command needs: config,
// logger, theme, session, and the API client. Commands build an App in
// their RunE and tear it down when done.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sassmon/internal/api"
	"sassmon/internal/config"
	"sassmon/internal/logging"
	"sassmon/internal/session"
	"sassmon/internal/theme"
	"sassmon/internal/tui/styles"
)

// App carries the process-wide dependencies.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Theme   *theme.Manager
	Session *session.Session
	Client  *api.Client
}

// Option adjusts how the App is constructed.
type Option func(*settings)

type settings struct {
	onLoginView bool
}

// OnLoginView marks the current command as the login flow, so a 401
// does not tell the user to run the command they are already running.
func OnLoginView() Option {
	return func(s *settings) { s.onLoginView = true }
}

// New builds the shared application state. The theme is applied and
// the style package synced before this returns.
func New(opts ...Option) (*App, error) {
	var st settings
	for _, opt := range opts {
		opt(&st)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Debug, cfg.DebugLogPath)
	if err != nil {
		return nil, err
	}

	themePath, err := theme.DefaultPath()
	if err != nil {
		return nil, err
	}
	manager := theme.NewManager(themePath, logger)
	manager.Scope().AttachTerminal(os.Stdout)
	manager.Initialize(nil)
	styles.Sync(manager.Scope())

	sess := session.New(session.DefaultStore(), logger)

	client := api.New(cfg.ResolvedAPIBaseURL(), sess,
		api.WithLogger(logger),
		api.WithNotifier(stderrNotifier{}),
		api.WithNavigator(cliNavigator{onLoginView: st.onLoginView}),
	)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Theme:   manager,
		Session: sess,
		Client:  client,
	}, nil
}

// RequireSession is a cobra PersistentPreRunE for protected command
// groups. It checks token presence only; expiry is enforced by the API
// client on the first request, which purges the session and points the
// user back to login.
func RequireSession(cmd *cobra.Command, _ []string) error {
	sess := session.New(session.DefaultStore(), nil)
	if !sess.HasToken() {
		return fmt.Errorf("not signed in: run `sassmon auth login` first")
	}
	return nil
}

// Close flushes buffered log output.
func (a *App) Close() {
	_ = a.Logger.Sync()
}

// stderrNotifier prints API notices to stderr so they never corrupt
// stdout table or JSON output.
type stderrNotifier struct{}

func (stderrNotifier) Notify(message string) {
	fmt.Fprintln(os.Stderr, message)
}

// cliNavigator is the CLI stand-in for a login redirect: it tells the
// user which command to run next.
type cliNavigator struct {
	onLoginView bool
}

func (n cliNavigator) OnLoginView() bool { return n.onLoginView }

func (cliNavigator) NavigateToLogin() {
	fmt.Fprintln(os.Stderr, "Run `sassmon auth login` to sign in again.")
}
