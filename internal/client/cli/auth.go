package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the
// session manager has already persisted the token and re-validated the
// identity; the command just lands the user on their role's home view.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		printlnFn("Login failed: " + err.Error())
		return err
	}

	a.greet()
	return nil
}

// Logout ends the session. Safe to call when already signed out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out.")
	return nil
}

// Whoami renders the resolved session identity.
func (a *App) Whoami(_ context.Context) error {
	if !a.guard() {
		return nil
	}
	s := a.store.Snapshot()
	printlnFn(fmt.Sprintf("%s (id=%s, role=%s)", s.User.Name, s.User.ID, s.User.Role))
	return nil
}
