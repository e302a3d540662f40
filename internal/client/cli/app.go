// Package cli is the interactive terminal surface of the quiz client.
// It wires the session lifecycle, the access gate and the quiz runner
// into a small REPL.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/mayurhapani/online-quiz-cli/internal/client/access"
	"github.com/mayurhapani/online-quiz-cli/internal/client/api"
	"github.com/mayurhapani/online-quiz-cli/internal/client/config"
	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
	"github.com/mayurhapani/online-quiz-cli/internal/client/quiz"
	"github.com/mayurhapani/online-quiz-cli/internal/client/session"
	"github.com/mayurhapani/online-quiz-cli/internal/client/storage"
	"github.com/mayurhapani/online-quiz-cli/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	client  api.Client
	store   *session.Store
	session *session.Manager
	results *quiz.Results
	db      *sql.DB
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.StorePath)
	if err != nil {
		return nil, err
	}

	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout)
	store := session.NewStore()
	manager := session.NewManager(client, store, storage.NewSQLiteStorage(db), log)

	return &App{
		config:  cfg,
		log:     log,
		client:  client,
		store:   store,
		session: manager,
		results: quiz.NewResults(client),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run rehydrates the session and hands control to the REPL. The context
// bounds every request issued from the loop; cancelling it abandons
// anything still in flight.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	if err := a.session.Initialize(ctx); err != nil {
		a.log.Warn(ctx, "session rehydration failed", "error", err)
	}
	a.greet()

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) close() {
	_ = a.client.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().IsLoggedIn
}

func (a *App) status() string {
	s := a.store.Snapshot()
	if s.Loading {
		return "(loading)"
	}
	if !s.IsLoggedIn {
		return ""
	}
	return fmt.Sprintf("(%s %s)", s.User.Name, s.User.Role)
}

// guard is the command-level consumption point of the access gate: it
// evaluates the decision table against the current session snapshot and
// reports whether the guarded command may proceed.
func (a *App) guard(required ...models.Role) bool {
	switch access.Decide(a.store.Snapshot(), required...) {
	case access.Render:
		return true
	case access.ShowLoading:
		printlnFn("Session is still loading, try again in a moment.")
	case access.RedirectSignIn:
		printlnFn("Please sign in first (type 'login').")
	case access.RedirectHome:
		printlnFn("Your role does not have access to this command.")
	}
	return false
}

// greet is the role-dispatched landing view.
func (a *App) greet() {
	s := a.store.Snapshot()
	if !s.IsLoggedIn {
		printlnFn("Welcome to the quiz platform. Type 'login' to sign in, 'help' for commands.")
		return
	}
	switch s.Role() {
	case models.RoleAdmin:
		printlnFn(fmt.Sprintf("Welcome back, %s. Admin dashboard: 'quizzes' to review the catalogue.", s.User.Name))
	case models.RoleTeacher:
		printlnFn(fmt.Sprintf("Welcome back, %s. Teacher dashboard: 'quizzes' to review the catalogue.", s.User.Name))
	default:
		printlnFn(fmt.Sprintf("Welcome back, %s. 'quizzes' lists what you can take, 'take <id>' starts an attempt.", s.User.Name))
	}
}

// handleErr applies the error propagation policy: an unauthorized
// response anywhere expires the session and clears persisted
// credentials; everything else is surfaced as a notification.
func (a *App) handleErr(ctx context.Context, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		a.session.Expire(ctx)
		printlnFn("Session expired, please sign in again.")
		return
	}
	printlnFn("Error: " + err.Error())
}
