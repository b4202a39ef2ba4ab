// Package session persists the access/refresh token pair across process
// restarts. It is pure storage: expiry decisions live in jwtx, and callers
// inject the Store so tests can swap in the in-memory implementation.
package session

import "context"

// Store is the durable home of the token pair. Exactly two named slots
// exist; an empty string written to a slot clears it, and reads of a
// cleared or never-set slot return "".
type Store interface {
	// Save overwrites both slots together.
	Save(ctx context.Context, access, refresh string) error
	// SaveAccessToken overwrites only the access slot.
	SaveAccessToken(ctx context.Context, access string) error
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	// Clear removes both slots, used on sign-out.
	Clear(ctx context.Context) error
}

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)
