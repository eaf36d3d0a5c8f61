// Package session owns the client's authentication state: whether a user is
// signed in, who they are, and what the last failed operation reported. It
// orchestrates the auth API and the credential store, and emits navigation
// intents on every transition across the auth boundary.
//
// The manager is created once at startup and lives for the whole process.
// Mutating operations (Login, Signup, Logout) are serialized: a call issued
// while another is in flight queues behind it, and the later call's outcome
// stands. Snapshot never blocks behind network or storage I/O.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/fittlens/fittlens-cli/internal/client/api"
	"github.com/fittlens/fittlens-cli/internal/client/models"
	"github.com/fittlens/fittlens-cli/internal/client/navigation"
	"github.com/fittlens/fittlens-cli/internal/client/repositories/credentials"
	"github.com/fittlens/fittlens-cli/internal/logging"
)

// Validation errors returned before any network call is made.
var (
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrEmptyFields      = errors.New("all fields are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Snapshot is a point-in-time copy of the session state.
// Authenticated is true exactly when CurrentUser is non-nil.
// LastError is empty when the most recent operation succeeded.
type Snapshot struct {
	Authenticated bool
	Loading       bool
	LastError     string
	CurrentUser   *models.UserProfile
}

// Manager is the session lifecycle state machine.
type Manager struct {
	api    api.Client
	store  credentials.Repository
	nav    navigation.Navigator
	logger logging.Logger

	// opMu serializes mutating operations; mu guards the state fields so
	// Snapshot stays cheap while a request is in flight.
	opMu sync.Mutex
	mu   sync.Mutex

	authenticated bool
	loading       bool
	lastError     string
	currentUser   *models.UserProfile
}

func NewManager(apiClient api.Client, store credentials.Repository, nav navigation.Navigator, logger logging.Logger) *Manager {
	return &Manager{api: apiClient, store: store, nav: nav, logger: logger}
}

// Snapshot returns a copy of the current state. The profile is copied so
// callers cannot mutate the manager's view of the user.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		Authenticated: m.authenticated,
		Loading:       m.loading,
		LastError:     m.lastError,
	}
	if m.currentUser != nil {
		u := *m.currentUser
		s.CurrentUser = &u
	}
	return s
}

// Bootstrap attempts to restore a session persisted by a previous run. It is
// called once at startup, before any other operation. A complete well-formed
// record promotes the session to authenticated and switches to the tabs
// stack; anything else, including storage errors, leaves the session
// anonymous with no redirect. It never touches loading or lastError.
func (m *Manager) Bootstrap(ctx context.Context) {
	rec, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Warn(ctx, "session restore failed", "error", err.Error())
		return
	}
	if rec == nil {
		m.logger.Debug(ctx, "no persisted session")
		return
	}

	profile := rec.Profile
	m.mu.Lock()
	m.currentUser = &profile
	m.authenticated = true
	m.mu.Unlock()

	m.logger.Info(ctx, "session restored", "email", profile.Email)
	m.nav.Replace(navigation.StackTabs)
}

// Login authenticates with the given credentials. Empty email or password
// short-circuits with ErrEmptyCredentials and no state change. On success the
// token and profile are persisted before the in-memory state is promoted; a
// persistence failure therefore leaves the session anonymous, since an
// unpersisted session would not survive a restart.
func (m *Manager) Login(ctx context.Context, req models.LoginRequest) error {
	if req.Email == "" || req.Password == "" {
		return ErrEmptyCredentials
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.beginOperation()
	defer m.endOperation()

	auth, err := m.api.Login(ctx, req)
	if err != nil {
		return m.fail(ctx, "login", err)
	}

	return m.promote(ctx, auth)
}

// Signup registers a new account. All four fields must be non-empty;
// a password/confirmation mismatch is a local validation failure recorded in
// lastError with no network call. Otherwise the contract is Login's.
func (m *Manager) Signup(ctx context.Context, req models.SignupRequest) error {
	if req.DisplayName == "" || req.Email == "" || req.Password == "" || req.PasswordConfirmation == "" {
		return ErrEmptyFields
	}
	if req.Password != req.PasswordConfirmation {
		m.mu.Lock()
		m.lastError = ErrPasswordMismatch.Error()
		m.mu.Unlock()
		return ErrPasswordMismatch
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.beginOperation()
	defer m.endOperation()

	auth, err := m.api.Signup(ctx, req)
	if err != nil {
		return m.fail(ctx, "signup", err)
	}

	return m.promote(ctx, auth)
}

// Logout clears the persisted record and resets the session to anonymous.
// A storage failure is logged and returned, but the in-memory session is
// reset regardless: after a user-initiated logout the session must never
// remain authenticated. Logout is idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	err := m.store.Clear(ctx)
	if err != nil {
		m.logger.Error(ctx, "clearing persisted session failed", "error", err.Error())
	}

	m.mu.Lock()
	m.currentUser = nil
	m.authenticated = false
	m.mu.Unlock()

	m.nav.Replace(navigation.StackAuth)
	return err
}

func (m *Manager) beginOperation() {
	m.mu.Lock()
	m.loading = true
	m.lastError = ""
	m.mu.Unlock()
}

func (m *Manager) endOperation() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

// fail records a failure message for the view layer and returns err.
// Authentication state is left untouched.
func (m *Manager) fail(ctx context.Context, op string, err error) error {
	m.logger.Warn(ctx, op+" failed", "error", err.Error())

	m.mu.Lock()
	m.lastError = failureMessage(err)
	m.mu.Unlock()
	return err
}

// promote persists the authorization and then flips the in-memory state.
// Persist-first ordering means a crash between the two steps leaves the user
// merely logged out rather than holding a session that vanishes on restart.
func (m *Manager) promote(ctx context.Context, auth *api.Authorization) error {
	if err := m.store.Save(ctx, auth.Token, auth.Profile); err != nil {
		return m.fail(ctx, "persisting session", err)
	}

	profile := auth.Profile
	m.mu.Lock()
	m.currentUser = &profile
	m.authenticated = true
	m.mu.Unlock()

	m.logger.Info(ctx, "signed in", "email", profile.Email)
	m.nav.Replace(navigation.StackTabs)
	return nil
}

// failureMessage maps an operation error to the text shown to the user:
// server-reported messages verbatim, everything else a generic phrase.
func failureMessage(err error) string {
	var se *api.ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "server unavailable, try again later"
	}
	return "an unknown error occurred"
}
