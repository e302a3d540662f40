// Package storage is the client-side persistent key-value store. The
// session layer keeps exactly one durable value here (the auth token)
// behind a narrow capability interface so tests can substitute an
// in-memory fake.
package storage

import "context"

// TokenKey is the key under which the session token is persisted.
const TokenKey = "auth_token"

// Storage is the minimal persistence capability required by the session
// manager. Get returns an empty string (and no error) for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
