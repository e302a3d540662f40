// Package access decides whether a protected view may render for the
// current session. The decision is a pure function of the session
// snapshot and the view's role requirement; nothing else may influence
// it.
package access

import (
	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
	"github.com/mayurhapani/online-quiz-cli/internal/client/session"
)

// Decision is the outcome of the gate.
type Decision int

const (
	// ShowLoading: the session is still resolving; render only a
	// loading indicator.
	ShowLoading Decision = iota
	// RedirectSignIn: no authenticated session; send the user to sign
	// in.
	RedirectSignIn
	// RedirectHome: authenticated, but the role does not satisfy the
	// requirement; send the user home.
	RedirectHome
	// Render: the protected content may be shown.
	Render
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "loading"
	case RedirectSignIn:
		return "redirect-sign-in"
	case RedirectHome:
		return "redirect-home"
	case Render:
		return "render"
	}
	return "unknown"
}

// Decide applies the gate's decision table. An empty required set means
// any authenticated user may pass.
func Decide(s session.Session, required ...models.Role) Decision {
	if s.Loading {
		return ShowLoading
	}
	if !s.IsLoggedIn {
		return RedirectSignIn
	}
	if len(required) == 0 {
		return Render
	}
	role := s.Role()
	for _, r := range required {
		if role == r {
			return Render
		}
	}
	return RedirectHome
}
