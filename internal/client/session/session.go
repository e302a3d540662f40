// Package session holds the authenticated identity of the current user
// and the lifecycle that maintains it. The Store is the only mutable
// state shared between components; the Manager is its sole writer and
// everything else reads snapshots.
package session

import (
	"sync"

	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
)

// Session is the credential and identity state of the current user.
//
// Invariant: IsLoggedIn is true iff Token is non-empty and User is fully
// resolved (id, name and role all present). While Loading is true, role
// decisions are suspended and no protected content may be shown.
type Session struct {
	Token      string
	User       *models.User
	IsLoggedIn bool
	Loading    bool
}

// Role projects the session's role. There is deliberately no separate
// role cache anywhere: the resolved user is the single source of truth.
func (s Session) Role() models.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Store owns the current Session. Mutators are unexported so that only
// the Manager (same package) can write; token and user always change in
// the same critical section, never partially.
type Store struct {
	mu sync.RWMutex
	s  Session
}

// NewStore returns a Store in the loading state: until Initialize has
// resolved, the access gate must not render protected content.
func NewStore() *Store {
	return &Store{s: Session{Loading: true}}
}

// Snapshot returns a copy of the current session.
func (st *Store) Snapshot() Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s := st.s
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (st *Store) setAuthenticated(token string, user models.User) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Token = token
	st.s.User = &user
	st.s.IsLoggedIn = true
}

func (st *Store) reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Token = ""
	st.s.User = nil
	st.s.IsLoggedIn = false
}

func (st *Store) setLoading(loading bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Loading = loading
}
