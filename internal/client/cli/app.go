// Package cli renders the FitLens screens as a read–eval–print loop: the set
// of commands the prompt accepts is the current screen stack, and switching
// stacks on login/logout changes that set. Equipment, workout, and preference
// screens are placeholders, matching the reference app.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/fittlens/fittlens-cli/internal/client/api"
	"github.com/fittlens/fittlens-cli/internal/client/client"
	"github.com/fittlens/fittlens-cli/internal/client/config"
	"github.com/fittlens/fittlens-cli/internal/client/models"
	"github.com/fittlens/fittlens-cli/internal/client/navigation"
	"github.com/fittlens/fittlens-cli/internal/client/repositories/credentials"
	"github.com/fittlens/fittlens-cli/internal/client/session"
	"github.com/fittlens/fittlens-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionManager is the slice of the session API the screens use.
// *session.Manager satisfies it; tests provide a lightweight fake.
type sessionManager interface {
	Bootstrap(ctx context.Context)
	Login(ctx context.Context, req models.LoginRequest) error
	Signup(ctx context.Context, req models.SignupRequest) error
	Logout(ctx context.Context) error
	Snapshot() session.Snapshot
}

type App struct {
	config   *config.Config
	sessions sessionManager
	logger   logging.Logger
	reader   *bufio.Reader

	stack navigation.Stack
}

// NewApp wires the client stack: the local credentials database, the HTTP
// auth client, and the session manager. The returned App is the session
// manager's Navigator.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "initializing database failed", "error", err.Error())
		return nil, err
	}

	app := &App{
		config: c,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		stack:  navigation.StackAuth,
	}

	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout)
	store := credentials.NewSQLiteRepository(db)
	app.sessions = session.NewManager(apiClient, store, app, logger)

	return app, nil
}

// Replace implements navigation.Navigator: the stack determines which
// commands the prompt accepts.
func (a *App) Replace(stack navigation.Stack) {
	if a.stack != stack {
		a.stack = stack
		a.logger.Info(context.Background(), "switched stack", "stack", string(stack))
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Snapshot().Authenticated
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) getStatus() string {
	snap := a.sessions.Snapshot()
	if snap.CurrentUser == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", snap.CurrentUser.Email)
}
