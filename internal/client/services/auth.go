// Package services contains application services for the CrewHive client.
// This file defines authentication: sign-in/sign-out, restoring a persisted
// session, proactive token refresh, and the current-user lookup.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crewhive/crewhive/internal/client/api"
	"github.com/crewhive/crewhive/internal/client/session"
	"github.com/crewhive/crewhive/internal/jwtx"
)

// CurrentUser combines backend profile data with claims decoded from the
// access token.
type CurrentUser struct {
	ID        int64
	Username  string
	Email     string
	Role      string
	CompanyID *int64
}

// AuthService defines the authentication operations used by the CLI.
//
// Contract:
//   - SignIn: authenticate and persist the token pair.
//   - Restore: prime the API client from persisted tokens, if any.
//   - AccessToken: return a usable access token, refreshing it first when
//     it is about to expire.
//   - SignOut: clear persisted tokens.
//
// All methods honor context cancellation.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)
	AccessToken(ctx context.Context) (string, error)
	CurrentUser(ctx context.Context) (CurrentUser, error)
	HasRole(ctx context.Context, role string) bool
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client           api.Client
	store            session.Store
	refreshThreshold time.Duration
}

// NewAuthService wires the remote client to the durable session store.
// refreshThreshold controls how close to expiry an access token may get
// before AccessToken refreshes it.
func NewAuthService(client api.Client, store session.Store, refreshThreshold time.Duration) AuthService {
	return &authService{client: client, store: store, refreshThreshold: refreshThreshold}
}

// SignIn authenticates against the backend and persists the returned token
// pair. The API client is primed as a side effect.
func (a *authService) SignIn(ctx context.Context, email, password string) error {
	pair, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if err := a.store.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return fmt.Errorf("persist tokens: %w", err)
	}
	return nil
}

// Restore loads a previously persisted token pair into the API client.
// It reports whether a session was found; it does not validate expiry,
// AccessToken does that lazily.
func (a *authService) Restore(ctx context.Context) (bool, error) {
	access, err := a.store.AccessToken(ctx)
	if err != nil {
		return false, err
	}
	refresh, err := a.store.RefreshToken(ctx)
	if err != nil {
		return false, err
	}
	if access == "" && refresh == "" {
		return false, nil
	}
	a.client.SetTokens(access, refresh)
	return true, nil
}

// AccessToken returns the current access token, refreshing the pair first
// when it is within the configured threshold of expiry. A token without a
// readable expiry is returned as-is.
func (a *authService) AccessToken(ctx context.Context) (string, error) {
	access, err := a.store.AccessToken(ctx)
	if err != nil {
		return "", err
	}
	if !jwtx.IsAboutToExpire(access, a.refreshThreshold) {
		return access, nil
	}

	refresh, err := a.store.RefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refresh == "" {
		return access, nil
	}

	pair, err := a.client.Refresh(ctx, refresh)
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}
	if err := a.store.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return "", fmt.Errorf("persist refreshed tokens: %w", err)
	}
	return pair.AccessToken, nil
}

// CurrentUser resolves the viewer's identity. Claims from the access token
// fill in role and company when the profile endpoint omits them.
func (a *authService) CurrentUser(ctx context.Context) (CurrentUser, error) {
	user, err := a.client.Me(ctx)
	if err != nil {
		return CurrentUser{}, err
	}

	current := CurrentUser{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CompanyID: user.CompanyID,
	}

	access, err := a.store.AccessToken(ctx)
	if err != nil {
		return current, nil
	}
	if claims, ok := jwtx.Extract(access); ok {
		if current.Role == "" && claims.Role != nil {
			current.Role = *claims.Role
		}
		if current.CompanyID == nil {
			current.CompanyID = claims.CompanyID
		}
	}
	return current, nil
}

// HasRole checks the persisted access token's claims. Storage errors and
// malformed tokens read as "not granted".
func (a *authService) HasRole(ctx context.Context, role string) bool {
	access, err := a.store.AccessToken(ctx)
	if err != nil {
		return false
	}
	return jwtx.HasRole(access, role)
}

// SignOut clears the persisted session.
func (a *authService) SignOut(ctx context.Context) error {
	a.client.SetTokens("", "")
	return a.store.Clear(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
