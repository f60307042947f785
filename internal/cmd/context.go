package cmd

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dataroomhq/dataroom-cli/internal/config"
	"github.com/dataroomhq/dataroom-cli/internal/errors"
	"github.com/dataroomhq/dataroom-cli/internal/log"
	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/session"
	"github.com/dataroomhq/dataroom-cli/internal/store"
	"github.com/dataroomhq/dataroom-cli/internal/tenant"
	"github.com/dataroomhq/dataroom-cli/internal/theme"
	"github.com/dataroomhq/dataroom-cli/internal/ux"
)

// App bundles the state containers every command depends on. It is
// constructed once per invocation and passed explicitly; there are no
// package-level session or tenant singletons.
type App struct {
	Config  *config.Config
	Client  *platform.Client
	Session *session.Manager
	Tenant  *tenant.Manager
	Theme   *theme.Manager
	Logger  *log.Logger
}

// newApp wires the application from config and restores any persisted
// session
func newApp() (*App, error) {
	dir := config.DefaultDir()

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	logCfg := log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	}
	if debugMode {
		logCfg = log.DebugConfig()
	}
	logger := log.New(logCfg)

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	th := theme.NewManager()
	client := platform.NewClient(cfg.APIBaseURL)
	creds := store.NewCredentialStore(dir)

	sess := session.NewManager(client, creds, th, logger)
	if err := sess.Restore(); err != nil {
		// A corrupt credentials file should not brick the CLI.
		logger.WithError(err).Warn("ignoring unreadable credentials")
	}

	return &App{
		Config:  cfg,
		Client:  client,
		Session: sess,
		Tenant:  tenant.NewManager(sess, client, th, logger),
		Theme:   th,
		Logger:  logger,
	}, nil
}

// requireSession ensures an authenticated identity, fetching the
// profile when only a token survived the last run
func (a *App) requireSession(ctx context.Context) error {
	if a.Session.IsAuthenticated() {
		return nil
	}
	if a.Session.Token() == "" {
		return errors.NewNotLoggedInError()
	}
	return a.Session.LoadProfile(ctx)
}

// requireTenant ensures the tenant context is loaded for the current
// identity
func (a *App) requireTenant(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	if !a.Session.IsTenantUser() {
		return errors.New(errors.ErrCodeTenantNoAffiliation, "current identity is not scoped to an organization")
	}
	return a.Tenant.LoadTenant(ctx)
}

// formatter builds the output formatter from the --output flag
func (a *App) formatter() (ux.Formatter, error) {
	return ux.NewFormatter(outputFormat, nil)
}
