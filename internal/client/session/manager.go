package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mayurhapani/online-quiz-cli/internal/client/api"
	"github.com/mayurhapani/online-quiz-cli/internal/client/storage"
	"github.com/mayurhapani/online-quiz-cli/internal/logging"
)

// ErrMalformedUser means the backend returned a user payload missing
// identity fields (id, name or role). The session is never marked logged
// in from such a payload.
var ErrMalformedUser = errors.New("malformed user payload")

// Manager orchestrates login, logout and rehydration. It is the sole
// writer of the Store, of the persisted token and of the api client's
// attached credential; all three always move together.
type Manager struct {
	client   api.Client
	store    *Store
	tokens   storage.Storage
	log      logging.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewManager(client api.Client, store *Store, tokens storage.Storage, log logging.Logger) *Manager {
	return &Manager{
		client:   client,
		store:    store,
		tokens:   tokens,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

// credentials carries the client-side required-field checks applied
// before any network call is issued.
type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Initialize re-establishes a session from a previously persisted token.
// Run once at process start. Whatever the outcome, the loading flag is
// cleared before returning so callers never observe Loading forever.
func (m *Manager) Initialize(ctx context.Context) error {
	m.store.setLoading(true)
	defer m.store.setLoading(false)

	token, err := m.tokens.Get(ctx, storage.TokenKey)
	if err != nil {
		m.store.reset()
		return fmt.Errorf("reading persisted token: %w", err)
	}
	if token == "" {
		m.store.reset()
		return nil
	}

	if err := m.rehydrate(ctx, token); err != nil {
		return fmt.Errorf("rehydrating session: %w", err)
	}
	return nil
}

// rehydrate validates a token by resolving the user behind it. Any
// failure discards the persisted token and leaves the session
// unauthenticated.
func (m *Manager) rehydrate(ctx context.Context, token string) error {
	if tokenExpired(token, m.now()) {
		m.discard(ctx)
		return fmt.Errorf("%w: token expired", api.ErrUnauthorized)
	}

	m.client.SetToken(token)
	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		m.discard(ctx)
		return err
	}
	if !user.Resolved() {
		m.discard(ctx)
		return ErrMalformedUser
	}

	m.store.setAuthenticated(token, user)
	return nil
}

// Login authenticates with the backend. On success the token is
// persisted, the store is populated optimistically from the login
// response, and the session is immediately re-validated through the same
// path as Initialize to correct any skew between the login response and
// canonical user state. The re-validation is awaited, never deferred to
// a timer.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := m.validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return fmt.Errorf("validating credentials: %w", err)
	}

	token, user, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.client.SetToken("")
		m.store.reset()
		return err
	}

	if err := m.tokens.Set(ctx, storage.TokenKey, token); err != nil {
		// The session still works for this process; it just won't
		// survive a restart.
		m.log.Warn(ctx, "persisting token failed", "error", err)
	}

	m.client.SetToken(token)
	if user.Resolved() {
		m.store.setAuthenticated(token, user)
	}

	if err := m.rehydrate(ctx, token); err != nil {
		return fmt.Errorf("re-validating session: %w", err)
	}

	m.log.Info(ctx, "logged in", "user", user.Name, "role", user.Role)
	return nil
}

// Logout invalidates the session server-side on a best-effort basis and
// always clears local state. Calling it twice is harmless.
func (m *Manager) Logout(ctx context.Context) error {
	if m.store.Snapshot().IsLoggedIn {
		if err := m.client.Logout(ctx); err != nil {
			m.log.Warn(ctx, "server-side logout failed", "error", err)
		}
	}
	m.discard(ctx)
	return nil
}

// Expire forces the session to unauthenticated and clears persisted
// credentials. Components call it when any request comes back
// unauthorized.
func (m *Manager) Expire(ctx context.Context) {
	m.discard(ctx)
}

func (m *Manager) discard(ctx context.Context) {
	if err := m.tokens.Delete(ctx, storage.TokenKey); err != nil {
		m.log.Warn(ctx, "clearing persisted token failed", "error", err)
	}
	m.client.SetToken("")
	m.store.reset()
}
